package params

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value enumerates the destination types an option can bind: booleans,
// default- and long-width signed integers, unsigned integers, single- and
// double-precision floats, single characters, and strings.
type Value interface {
	bool | int | int64 | uint | float32 | float64 | rune | string
}

func parserFor[T Value]() func(string) (T, error) {
	var zero T
	parse, _ := map[any]any{
		false:      parseBool,
		int(0):     parseInt[int],
		int64(0):   parseInt[int64],
		uint(0):    parseUint,
		float32(0): parseFloat[float32],
		float64(0): parseFloat[float64],
		rune(0):    parseRune,
		"":         parseString,
	}[zero].(func(string) (T, error))
	return parse
}

// typeNameFor reports the name used in diagnostics and help text.
func typeNameFor[T Value]() string {
	var zero T
	return map[any]string{
		false:      "bool",
		int(0):     "int",
		int64(0):   "long",
		uint(0):    "unsigned int",
		float32(0): "float",
		float64(0): "double",
		rune(0):    "char",
		"":         "string",
	}[zero]
}

func bitsFor[T Value]() int {
	var zero T
	return map[any]int{
		int(0):     strconv.IntSize,
		int64(0):   64,
		uint(0):    strconv.IntSize,
		float32(0): 32,
		float64(0): 64,
	}[zero]
}

// parseBool accepts "true" and "false" in any case, nothing else. This is
// narrower than strconv.ParseBool on purpose: bare "1" or "t" on a command
// line is more likely a mistake than a boolean.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%q is not true or false", s)
}

func parseInt[T int | int64](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitsFor[T]())
	return T(v), err
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	return uint(v), err
}

func parseFloat[T float32 | float64](s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitsFor[T]())
	return T(v), err
}

// parseRune takes the first character of the token; any trailing text is
// ignored.
func parseRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%q does not begin with a valid character", s)
	}
	return r, nil
}

func parseString(s string) (string, error) {
	return s, nil
}
