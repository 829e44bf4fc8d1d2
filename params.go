package params

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// Parser holds the option registry and the process boundary used by
// MustParse. Declare options against it, call Parse (or MustParse) once,
// then read the destinations.
type Parser struct {
	opts map[string]option

	// Stderr receives MustParse diagnostics; Exit ends the process after
	// one is written. Both default to the real process boundary and exist
	// as fields so tests can intercept them.
	Stderr io.Writer
	Exit   func(int)
}

// New returns an empty Parser writing diagnostics to os.Stderr and
// terminating through os.Exit.
func New() *Parser {
	return &Parser{
		opts:   make(map[string]option),
		Stderr: os.Stderr,
		Exit:   os.Exit,
	}
}

// register inserts o, replacing any prior option with the same long phrase.
func (p *Parser) register(o option) {
	if o.name() == "" {
		panic("option declared with empty phrase")
	}
	if o.help() == "" {
		panic(o.name() + ": option declared without help text")
	}
	p.opts[o.name()] = o
}

func (p *Parser) lookup(name string) (option, bool) {
	o, ok := p.opts[name]
	return o, ok
}

// sortedNames yields the registry keys in a stable order for validation and
// help output. Callers must still not depend on any particular ordering.
func (p *Parser) sortedNames() []string {
	names := make([]string, 0, len(p.opts))
	for name := range p.opts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MustParse is the process-terminating form of Parse: on any parse error it
// writes a diagnostic to p.Stderr and calls p.Exit(1).
func (p *Parser) MustParse(argv []string) {
	if err := p.Parse(argv); err != nil {
		fmt.Fprintln(p.Stderr, "error:", err)
		p.Exit(1)
	}
}
