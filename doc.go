// Package params declares and parses named command-line options.
//
// Callers allocate destination variables, declare each option against a
// Parser with a long phrase, a help phrase, and optionally an arity,
// default, or required flag, then parse the argument vector once:
//
//	p := params.New()
//	var iterations int
//	var seeds []float32
//	var name string
//	var showhelp bool
//	params.Option(p, &iterations, "--iterations", "The number of iterations to perform.")
//	params.Multi(p, &seeds, 3, "--seeds", "The seeds to begin simulation.").Require(false)
//	params.Option(p, &name, "--name", "The name for this simulation run.").Default("simulation")
//	params.Help(p, &showhelp)
//	p.MustParse(os.Args[1:])
//
// After parsing, the destinations hold the supplied values (or their
// defaults). Details renders a help-style summary of every declared option.
//
// Options need not start with dashes; any unique phrase works. Values may
// follow the phrase with a space or an equals sign (--seed 3 and --seed=3
// are equivalent). A quoted value keeps embedded spaces: --name '"a b"'
// arrives as the single value "a b". An option declared with arity -1
// consumes every remaining token and so must be last on the command line.
package params
