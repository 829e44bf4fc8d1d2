package params

import (
	"errors"
	"testing"
)

func TestCheckAcceptsAndRejects(t *testing.T) {
	var n int
	p := New()
	Option(p, &n, "--n", "n").Check("value > 0 && value < 100")
	if err := p.Parse([]string{"--n", "12"}); err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("n: got %d", n)
	}

	p = New()
	Option(p, &n, "--n", "n").Check("value > 0 && value < 100")
	err := p.Parse([]string{"--n", "100"})
	var bad *ValueError
	if !errors.As(err, &bad) || bad.Token != "100" {
		t.Fatalf("err: got %v, want value error on 100", err)
	}
}

func TestCheckOnStrings(t *testing.T) {
	var name string
	p := New()
	Option(p, &name, "--name", "name").Check(`len(value) >= 3`)
	if err := p.Parse([]string{"--name", "ab"}); err == nil {
		t.Fatal("want rejection for short name")
	}
	if err := p.Parse([]string{"--name", "abc"}); err != nil {
		t.Fatal(err)
	}
	if name != "abc" {
		t.Errorf("name: got %q", name)
	}
}

func TestCheckVetsDefaultWhenAttachedFirst(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want panic for default violating check")
		}
	}()
	var n int
	Option(New(), &n, "--n", "n").Check("value > 0").Default("0")
}

func TestCheckBadExpressionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want panic for malformed expression")
		}
	}()
	var n int
	Option(New(), &n, "--n", "n").Check("value >")
}
