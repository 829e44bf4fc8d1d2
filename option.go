package params

import (
	"fmt"

	"github.com/expr-lang/expr/vm"
)

// option is the type-erased view of a declared Opt the parser works with.
type option interface {
	name() string
	help() string
	arity() int
	required() bool
	boolean() bool
	satisfied() bool
	markSatisfied()
	defaultText() string
	typeName() string
	store(token string) error
}

// Opt is one declared option: its shape, its binding, and its parse-time
// satisfaction state. Construct one with Option, Multi, Bool, or Help.
type Opt[T Value] struct {
	scalar *T
	slice  *[]T

	longPhrase string
	helpPhrase string
	xargs      int
	req        bool
	sat        bool
	defText    string

	parse func(string) (T, error)
	check *vm.Program
}

// Option declares a required single-value option bound to a scalar
// destination. Default and Require adjust it afterward.
func Option[T Value](p *Parser, dest *T, longPhrase, helpPhrase string) *Opt[T] {
	o := &Opt[T]{
		scalar:     dest,
		longPhrase: longPhrase,
		helpPhrase: helpPhrase,
		xargs:      1,
		req:        true,
		parse:      parserFor[T](),
	}
	if o.boolean() {
		o.req = false
		o.sat = true
	}
	p.register(o)
	return o
}

// Multi declares a required option consuming count values into a slice
// destination. A count of -1 consumes every remaining token; such an option
// must be last on the command line.
func Multi[T Value](p *Parser, dest *[]T, count int, longPhrase, helpPhrase string) *Opt[T] {
	if count == 0 {
		panic(longPhrase + ": zero arity")
	}
	if _, ok := any(*new(T)).(bool); ok {
		panic(longPhrase + ": boolean options take no values")
	}
	o := &Opt[T]{
		slice:      dest,
		longPhrase: longPhrase,
		helpPhrase: helpPhrase,
		xargs:      count,
		req:        true,
		parse:      parserFor[T](),
	}
	p.register(o)
	return o
}

// Bool declares a boolean option. It consumes no value tokens: present means
// true, absent leaves the default (false unless Default("true")). Booleans
// are never required.
func Bool(p *Parser, dest *bool, longPhrase, helpPhrase string) *Opt[bool] {
	o := Option(p, dest, longPhrase, helpPhrase)
	*dest = false
	return o
}

// Help declares the conventional help flag. Encountering --help stops
// parsing immediately, leaving later tokens unread and required options
// unchecked, so the caller can print Details and exit.
func Help(p *Parser, dest *bool) *Opt[bool] {
	return Bool(p, dest, helpName, "Prints this help message.")
}

const helpName = "--help"

// Default records text converted and applied to the destination now, and
// marks the option not required. For a multi-value option the text seeds a
// single element; it is never expanded to the full arity.
func (o *Opt[T]) Default(text string) *Opt[T] {
	o.defText = text
	o.req = false
	if err := o.store(text); err != nil {
		panic(fmt.Sprintf("%s: bad default %q: %v", o.longPhrase, text, err))
	}
	return o
}

// Require overrides whether the option must appear on the command line.
// Booleans stay non-required no matter what.
func (o *Opt[T]) Require(req bool) *Opt[T] {
	if !o.boolean() {
		o.req = req
	}
	return o
}

func (o *Opt[T]) name() string        { return o.longPhrase }
func (o *Opt[T]) help() string        { return o.helpPhrase }
func (o *Opt[T]) arity() int          { return o.xargs }
func (o *Opt[T]) required() bool      { return o.req }
func (o *Opt[T]) satisfied() bool     { return o.sat }
func (o *Opt[T]) markSatisfied()      { o.sat = true }
func (o *Opt[T]) defaultText() string { return o.defText }
func (o *Opt[T]) typeName() string    { return typeNameFor[T]() }

func (o *Opt[T]) boolean() bool {
	_, ok := any(*new(T)).(bool)
	return ok
}

// store converts token and writes it through the binding: assign for a
// scalar, append for a slice. Empty text means "no value" and is a no-op.
func (o *Opt[T]) store(token string) error {
	if token == "" {
		return nil
	}
	v, err := o.parse(token)
	if err != nil {
		return err
	}
	if err := o.checkValue(v); err != nil {
		return err
	}
	if o.slice != nil {
		*o.slice = append(*o.slice, v)
		return nil
	}
	*o.scalar = v
	return nil
}
