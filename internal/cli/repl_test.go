package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/widecalc/internal/calc"
)

// runREPL feeds input to a fresh session and returns its output. It swaps
// the spinner, so callers must not run in parallel.
func runREPL(t *testing.T, input string) string {
	t.Helper()
	withMockSpinner(t)
	r := NewREPL(calc.NewDefaultFactory(), REPLConfig{DefaultBackend: "all", Timeout: time.Minute})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPL_Operations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"prefix", "mul 123456789 987654321\n", []string{"123456789 * 987654321 = 121932631112635269"}},
		{"infix", "17 % 5\n", []string{"17 % 5 = 2"}},
		{"negative", "div -17 5\n", []string{"-17 / 5 = -3"}},
		{"ans", "pow 2 64\nmul ans ans\n", []string{"2 ^ 64 = 18446744073709551616", "= 340282366920938463463374607431768211456"}},
		{"division by zero", "div 1 0\n", []string{"Error:", "division by zero"}},
		{"bad operand", "add 1 x\n", []string{"invalid operand: x"}},
		{"unknown", "frobnicate\n", []string{"unknown command: frobnicate", "Type help"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runREPL(t, tt.input+"exit\n")
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if !strings.Contains(out, "Goodbye!") {
				t.Error("session did not exit cleanly")
			}
		})
	}
}

func TestREPL_BackendCommands(t *testing.T) {
	out := runREPL(t, "backend big\nstatus\nbackend gpu\nbackend\nlist\nverbose\n")
	for _, want := range []string{
		"Backend changed to: big",
		"Backend:      big",
		"Unknown backend: gpu",
		"Usage: backend <name>",
		"Available backends: big, fft",
		"► big",
		"Full result display: true",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestREPL_Compare(t *testing.T) {
	out := runREPL(t, "compare pow 3 100\ncompare nope\nquit\n")
	for _, want := range []string{
		"Comparison for 3 ^ 100",
		"big",
		"fft",
		"✓",
		"= 515377520732011331036461129765621272702107522001",
		"Usage: compare <op> <a> <b>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "INCONSISTENT") {
		t.Errorf("backends disagree:\n%s", out)
	}
}

func TestREPL_BannerAndHelp(t *testing.T) {
	out := runREPL(t, "help\n")
	for _, want := range []string{"widecalc - Interactive Mode", "Available commands:", "compare <op> <a> <b>", "add, sub, mul, div, mod, pow, cmp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNewREPL_DefaultBackend(t *testing.T) {
	t.Parallel()
	if r := NewREPL(calc.NewDefaultFactory(), REPLConfig{}); r.currentBackend != "fft" {
		t.Errorf("default backend = %q, want fft", r.currentBackend)
	}
	if r := NewREPL(calc.NewDefaultFactory(), REPLConfig{DefaultBackend: "big"}); r.currentBackend != "big" {
		t.Errorf("backend = %q, want big", r.currentBackend)
	}
}
