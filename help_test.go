package params

import (
	"strings"
	"testing"
)

func TestDetails(t *testing.T) {
	var (
		show  bool
		iters int
		seeds []float32
		files []string
		name  string
	)
	p := New()
	Help(p, &show)
	Option(p, &iters, "--iterations", "The number of iterations to perform.")
	Multi(p, &seeds, 3, "--seeds", "The seeds to begin simulation.").Require(false)
	Multi(p, &files, -1, "--files", "Files to load.").Require(false)
	Option(p, &name, "--name", "The name for this simulation run.").Default("simulation")

	details := p.Details()
	for _, want := range []string{
		"--iterations",
		"The number of iterations to perform.",
		"1 argument of type int.",
		"3 arguments of type float.",
		"default: 'simulation'",
		"Prints this help message.",
	} {
		if !strings.Contains(details, want) {
			t.Errorf("details missing %q:\n%s", want, details)
		}
	}

	// Unbounded options list no argument count, and booleans no type.
	if block := optionBlock(t, details, "--files"); strings.Contains(block, "argument") {
		t.Errorf("unbounded option should omit its arity line:\n%s", block)
	}
	if block := optionBlock(t, details, "--help"); strings.Contains(block, "of type") {
		t.Errorf("boolean option should omit its type line:\n%s", block)
	}
}

// optionBlock cuts one option's lines out of rendered details.
func optionBlock(t *testing.T, details, phrase string) string {
	t.Helper()
	start := strings.Index(details, "\t"+phrase+"\n")
	if start < 0 {
		t.Fatalf("details missing %s:\n%s", phrase, details)
	}
	block := details[start:]
	if end := strings.Index(block, "\n\t-"); end >= 0 {
		block = block[:end+1]
	}
	return block
}

func TestDetailsSortedByPhrase(t *testing.T) {
	var a, b int
	p := New()
	Option(p, &b, "--zeta", "last").Require(false)
	Option(p, &a, "--alpha", "first").Require(false)
	details := p.Details()
	if strings.Index(details, "--alpha") > strings.Index(details, "--zeta") {
		t.Errorf("expected phrase-sorted output:\n%s", details)
	}
}
