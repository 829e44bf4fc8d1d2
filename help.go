package params

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
)

// Details renders a help-style summary of every declared option: its phrase,
// its help text, for value-consuming options the expected argument count and
// type name, and for non-required options the default text verbatim.
// Options are listed in phrase order; callers should not depend on the
// ordering. Unbounded options show no argument count.
func (p *Parser) Details() string {
	var b strings.Builder
	for _, name := range p.sortedNames() {
		o := p.opts[name]
		b.WriteString("\t" + o.name() + "\n")
		b.WriteString("\t\t" + o.help() + "\n")
		if n := o.arity(); n > 0 && !o.boolean() {
			fmt.Fprintf(&b, "\t\t%d %s of type %s.\n",
				n, english.PluralWord(n, "argument", ""), o.typeName())
		}
		if !o.required() {
			fmt.Fprintf(&b, "\t\tdefault: '%s'\n", o.defaultText())
		}
	}
	return b.String()
}
