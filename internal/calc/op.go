package calc

import (
	"fmt"
	"strings"

	"github.com/agbru/widecalc/internal/wideint"
)

// Op identifies an arithmetic operation.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpCmp
)

var opNames = [...]string{"add", "sub", "mul", "div", "mod", "pow", "cmp"}
var opSymbols = [...]string{"+", "-", "*", "/", "%", "^", "<=>"}

// Ops returns every operation in declaration order.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpCmp}
}

// OpNames returns the name of every operation in declaration order.
func OpNames() []string {
	return opNames[:]
}

// ParseOp accepts an operation name ("mul") or its symbol ("*"),
// case-insensitively.
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range opNames {
		if s == opNames[i] || s == opSymbols[i] {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q (valid: %s)", s, strings.Join(opNames[:], ", "))
}

// String returns the operation name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Symbol returns the infix symbol of the operation, e.g. "*" for OpMul.
func (o Op) Symbol() string {
	if o < 0 || int(o) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[o]
}

// Request is one binary operation on two operands.
type Request struct {
	Op   Op
	A, B wideint.Int
}

// String renders the request as an infix expression.
func (r Request) String() string {
	return fmt.Sprintf("%s %s %s", r.A, r.Op.Symbol(), r.B)
}
