package params

import (
	"fmt"
	"strings"
)

// UnknownOptionError reports a token in option position that matches no
// declared long phrase.
type UnknownOptionError struct{ Name string }

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unrecognized option %q in invocation", e.Name)
}

// ValueError reports a value token that could not be converted to its
// option's declared type, or that failed the option's check.
type ValueError struct {
	Option string
	Type   string
	Token  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: bad value %q (expected type %s): %v", e.Option, e.Token, e.Type, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// MissingOptionError reports every required option that was absent, or whose
// values were incomplete, once the whole argument vector has been consumed.
type MissingOptionError struct{ Names []string }

func (e *MissingOptionError) Error() string {
	noun := "option"
	if len(e.Names) != 1 {
		noun = "options"
	}
	return fmt.Sprintf("%s %s required, and not found, or incomplete", noun, strings.Join(e.Names, ", "))
}
