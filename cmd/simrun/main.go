// Command simrun is a demonstration driver for the params library, shaped
// like a small simulation runner. It declares one of every registration
// form; it performs no real work.
package main

import (
	"fmt"
	"os"

	"github.com/JorySchossau/params"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		showhelp   bool
		verbose    bool
		iterations int
		seeds      []float32
		name       string
		files      []string
	)

	p := params.New()
	params.Option(p, &iterations, "--iterations", "The number of iterations to perform.").Check("value > 0")
	params.Multi(p, &seeds, 3, "--seeds", "The seeds to begin simulation.").Require(false)
	params.Option(p, &name, "--name", "The name for this simulation run.").Default("simulation")
	params.Bool(p, &verbose, "--verbose", "Reports each iteration as it runs.")
	params.Multi(p, &files, -1, "--files", "Input files appended to the run, in order.").Require(false)
	params.Help(p, &showhelp)

	if err := p.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if showhelp {
		fmt.Print(p.Details())
		return 0
	}

	fmt.Printf("run %q: %d iterations over %d seeds\n", name, iterations, len(seeds))
	if verbose {
		for i := 1; i <= iterations; i++ {
			fmt.Println("iteration", i)
		}
	}
	for _, f := range files {
		fmt.Println("loading", f)
	}
	return 0
}
