package params

// Parse consumes the argument vector (excluding the program name) and
// populates every bound destination. It alternates between reading an option
// phrase and reading that option's value tokens: a fixed arity returns to
// phrase reading once filled, while an unbounded option consumes every
// remaining token, even ones that look like other options' phrases.
//
// Encountering --help stops immediately with a nil error, leaving later
// tokens unread and required options unchecked. Any other failure returns
// one of UnknownOptionError, ValueError, or MissingOptionError; the
// destinations populated before the failure retain their values.
func (p *Parser) Parse(argv []string) error {
	buf := joinArgs(argv)
	spans, err := tokenize(buf)
	if err != nil {
		return err
	}

	var cur option // non-nil while reading values
	remaining := 0
	for _, sp := range spans {
		token := buf[sp.start:sp.end]
		if cur == nil {
			o, ok := p.lookup(token)
			if !ok {
				return &UnknownOptionError{Name: token}
			}
			if o.boolean() {
				if err := o.store("true"); err != nil {
					return &ValueError{Option: o.name(), Type: o.typeName(), Token: "true", Err: err}
				}
				o.markSatisfied()
				if token == helpName {
					return nil
				}
				continue
			}
			cur, remaining = o, o.arity()
			continue
		}

		if err := cur.store(token); err != nil {
			return &ValueError{Option: cur.name(), Type: cur.typeName(), Token: token, Err: err}
		}
		remaining--
		switch {
		case remaining == 0:
			cur.markSatisfied()
			cur = nil
		case remaining < 0:
			// Unbounded: satisfied after the first value, but never done.
			cur.markSatisfied()
		}
	}

	var missing []string
	for _, name := range p.sortedNames() {
		if o := p.opts[name]; o.required() && !o.satisfied() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingOptionError{Names: missing}
	}
	return nil
}
