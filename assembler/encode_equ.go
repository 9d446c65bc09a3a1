package assembler

// encodeEquation handles EQU: NAME: EQU expr. The line's label was
// already inserted into the symbol table (at the current PC) by the
// generic colon-handling in parseLine; unless that insert was a
// duplicate, EQU resets it to the tentative value 0, which it then
// either overwrites with the expression's value or removes outright.
//
// Mirroring the original: an expression made up entirely of numeric
// terms resolves immediately, in Pass 1. An expression that references a
// label — defined or not — is always deferred to Pass 2, since Pass 1
// never looks the label up at all; it only checks whether the term is
// label-shaped.
func (a *Assembler) encodeEquation(sl *SourceLine) {
	label := sl.Label
	if sl.Error != ErrDuplicateSymbol {
		a.symbols.Update(label, 0)
	}
	expr, err := parseExpr(sl.OperandText)
	if err != nil {
		a.fail(sl, ErrIllegalValue)
		a.symbols.Remove(label)
		return
	}

	numericOnly := !expr.Left.IsLabel && (!expr.HasOp || !expr.Right.IsLabel)
	if numericOnly {
		v, _, rerr := expr.Resolve(a.symbols)
		if rerr != nil {
			a.fail(sl, ErrIllegalValue)
			a.symbols.Remove(label)
			return
		}
		a.symbols.Update(label, v)
		return
	}

	sl.equLabel = label
	sl.equExpr = expr
}
