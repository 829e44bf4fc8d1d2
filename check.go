package params

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Check attaches a constraint evaluated against every converted value for
// this option. The expression sees the value as "value" and must yield a
// boolean, for example Check("value > 0 && value < 100"). A rejected value
// is a parse error against the offending token.
//
// The check applies to values seen after it is attached; call Check before
// Default to vet the default text too. A malformed expression panics at
// registration.
func (o *Opt[T]) Check(src string) *Opt[T] {
	var zero T
	prog, err := expr.Compile(src, expr.Env(checkEnv(zero)), expr.AsBool())
	if err != nil {
		panic(fmt.Sprintf("%s: bad check %q: %v", o.longPhrase, src, err))
	}
	o.check = prog
	return o
}

func checkEnv[T Value](v T) map[string]any {
	return map[string]any{"value": v}
}

func (o *Opt[T]) checkValue(v T) error {
	if o.check == nil {
		return nil
	}
	ok, err := expr.Run(o.check, checkEnv(v))
	if err != nil {
		return err
	}
	if !ok.(bool) {
		return fmt.Errorf("value %v rejected by check", v)
	}
	return nil
}
