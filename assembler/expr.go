package assembler

import (
	"fmt"
	"strings"

	"github.com/vissasm/asm80/symtab"
)

// ExprOp is the single binary operator an EQU expression may carry. The
// grammar is term (op term)? with no operator precedence — exactly one
// operator per expression (§4.4/Design Notes).
type ExprOp int

const (
	OpAdd ExprOp = iota
	OpSub
	OpMul
	OpDiv
)

// Term is one operand of an EQU expression: either a numeric literal
// already known at parse time, or a label to resolve against the symbol
// table.
type Term struct {
	IsLabel bool
	Label   string
	Value   uint16
}

// Expr is the parsed form of an EQU operand: Left alone, or Left Op Right.
type Expr struct {
	Left  Term
	HasOp bool
	Op    ExprOp
	Right Term
}

// parseExpr parses an EQU operand per the grammar term (op term)?. Per the
// redesign flags, an expression with more than one operator (e.g.
// "A+B+C") is rejected outright as *V* rather than silently mis-splitting
// the way the original implementation did.
func parseExpr(s string) (*Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty EQU expression")
	}

	type opDef struct {
		ch byte
		op ExprOp
	}
	for _, od := range []opDef{{'+', OpAdd}, {'-', OpSub}, {'*', OpMul}, {'/', OpDiv}} {
		// Search from index 1 so a leading sign isn't mistaken for the
		// binary operator.
		rel := strings.IndexByte(s[1:], od.ch)
		if rel < 0 {
			continue
		}
		idx := rel + 1
		left, right := strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
		if hasOperator(left) || hasOperator(right) {
			return nil, fmt.Errorf("expression has more than one operator: %s", s)
		}
		lt, err := parseTerm(left)
		if err != nil {
			return nil, err
		}
		rt, err := parseTerm(right)
		if err != nil {
			return nil, err
		}
		return &Expr{Left: lt, HasOp: true, Op: od.op, Right: rt}, nil
	}

	t, err := parseTerm(s)
	if err != nil {
		return nil, err
	}
	return &Expr{Left: t}, nil
}

func hasOperator(s string) bool {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '+', '-', '*', '/':
			return true
		}
	}
	return false
}

func parseTerm(tok string) (Term, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Term{}, fmt.Errorf("empty term")
	}
	if looksLikeLabel(tok) {
		return Term{IsLabel: true, Label: tok}, nil
	}
	v, err := parseAddr(tok)
	if err != nil {
		return Term{}, err
	}
	return Term{Value: v}, nil
}

// resolve evaluates a term against the symbol table, reporting whether it
// resolved.
func (t Term) resolve(symbols *symtab.Table) (uint16, bool) {
	if !t.IsLabel {
		return t.Value, true
	}
	return symbols.Lookup(t.Label)
}

// errDivByZero distinguishes "still unresolved" from "division by zero",
// which the original guards explicitly before dividing.
var errDivByZero = fmt.Errorf("division by zero")

// Resolve evaluates the expression against the symbol table. ok is false
// when a referenced label is not yet defined (the caller should leave the
// EQU pending); err is non-nil only for division by zero (*V*).
func (e *Expr) Resolve(symbols *symtab.Table) (value uint16, ok bool, err error) {
	left, lok := e.Left.resolve(symbols)
	if !e.HasOp {
		return left, lok, nil
	}
	right, rok := e.Right.resolve(symbols)
	if !lok || !rok {
		return 0, false, nil
	}
	switch e.Op {
	case OpAdd:
		return left + right, true, nil
	case OpSub:
		return left - right, true, nil
	case OpMul:
		return left * right, true, nil
	case OpDiv:
		if right == 0 {
			return 0, false, errDivByZero
		}
		return left / right, true, nil
	}
	return 0, false, fmt.Errorf("unknown operator")
}
