package assembler

import "github.com/vissasm/asm80/cpu"

// pass2 walks the provisional listing and resolves every Hole left by
// Pass 1: the two halves of an address reference, a single HIGH/LOW byte
// reference, and any EQU expression that touched a label. A Hole whose
// label was never defined becomes Undefined rather than staying a
// textual placeholder — see Slot's doc comment.
func (a *Assembler) pass2(lines []*SourceLine) ([]*SourceLine, error) {
	for _, sl := range lines {
		if sl.equExpr != nil {
			a.resolveEquation(sl)
			continue
		}
		slots := sl.Bytes
		if len(sl.Extended) > 0 {
			slots = sl.Extended
		}
		for i := range slots {
			a.resolveSlot(sl, &slots[i])
		}
	}
	return lines, nil
}

// resolveSlot fills in one Hole-carrying Slot from the symbol table, or
// marks it Undefined and raises *U* if the label was never defined.
func (a *Assembler) resolveSlot(sl *SourceLine, slot *Slot) {
	if slot.Known || slot.Hole == nil {
		return
	}
	h := slot.Hole
	val, ok := a.symbols.Lookup(h.Label)
	if !ok {
		a.fail(sl, ErrUndefinedSymbol)
		slot.Undefined = true
		slot.Hole = nil
		return
	}
	switch h.Kind {
	case HoleLowAddr, HoleHighAddr:
		target := uint16(int32(val) + h.Offset)
		lo, hi := cpu.SplitWord(target)
		if h.Kind == HoleLowAddr {
			slot.Value = lo
		} else {
			slot.Value = hi
		}
	case HoleLowOf, HoleHighOf:
		lo, hi := cpu.SplitWord(val)
		if h.Kind == HoleLowOf {
			slot.Value = lo
		} else {
			slot.Value = hi
		}
	}
	slot.Known = true
	slot.Hole = nil
}

// resolveEquation evaluates an EQU expression deferred from Pass 1
// because it referenced a label. A division by zero or a label that
// never resolves removes the tentative symbol table entry outright
// rather than leaving it at its tentative value 0.
func (a *Assembler) resolveEquation(sl *SourceLine) {
	v, ok, err := sl.equExpr.Resolve(a.symbols)
	if err != nil {
		a.fail(sl, ErrIllegalValue)
		a.symbols.Remove(sl.equLabel)
		return
	}
	if !ok {
		a.fail(sl, ErrUndefinedSymbol)
		a.symbols.Remove(sl.equLabel)
		return
	}
	a.symbols.Update(sl.equLabel, v)
}
