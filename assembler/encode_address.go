package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vissasm/asm80/cpu"
)

// parseLabelRef splits a label-reference operand into its label and an
// optional decimal +/- offset (label+N / label-N). The split point is the
// first '+' or '-' after position 0, so a leading sign never gets
// mistaken for the offset operator — the clean rule the redesign flags
// adopt in place of the original's ad hoc index scan.
func parseLabelRef(text string) (label string, offset int32, err error) {
	text = strings.TrimSpace(text)
	for i := 1; i < len(text); i++ {
		if text[i] != '+' && text[i] != '-' {
			continue
		}
		label = strings.TrimSpace(text[:i])
		offStr := strings.TrimSpace(text[i+1:])
		n, perr := strconv.ParseInt(offStr, 10, 32)
		if perr != nil {
			return "", 0, fmt.Errorf("invalid label offset %q: %w", offStr, perr)
		}
		if text[i] == '-' {
			n = -n
		}
		return label, int32(n), nil
	}
	return text, 0, nil
}

// addressSlots parses a 2-byte address-context operand: a numeric literal
// (emitted immediately, low byte first) or a label reference (deferred to
// Pass 2 as a pair of holes). Anything else is *V*, leaving a zeroed pair
// so the caller's byte count stays correct.
func (a *Assembler) addressSlots(sl *SourceLine, text string) []Slot {
	text = strings.TrimSpace(text)
	if v, err := parseAddr(text); err == nil {
		lo, hi := cpu.SplitWord(v)
		return []Slot{knownSlot(lo), knownSlot(hi)}
	}
	if label, offset, err := parseLabelRef(text); err == nil && looksLikeLabel(label) {
		return []Slot{
			holeSlot(Hole{Kind: HoleLowAddr, Label: label, Offset: offset}),
			holeSlot(Hole{Kind: HoleHighAddr, Label: label, Offset: offset}),
		}
	}
	a.fail(sl, ErrIllegalValue)
	return []Slot{knownSlot(0), knownSlot(0)}
}

// encodeAddress handles the Address operand kind, which covers both the
// 3-byte address-taking instructions (JMP/CALL/LDA/...) and the three
// address-context pseudo-ops that share its grammar but not its byte
// shape: DW (2 bytes, no base), DS (0 bytes, advances PC) and ORG (0
// bytes, sets PC absolute).
func (a *Assembler) encodeAddress(sl *SourceLine, instr cpu.Instruction) {
	switch sl.Mnemonic {
	case "DW":
		sl.Bytes = a.addressSlots(sl, sl.OperandText)
	case "DS":
		a.encodeDS(sl)
	case "ORG":
		a.encodeORG(sl)
	default:
		addr := a.addressSlots(sl, sl.OperandText)
		sl.Bytes = append([]Slot{knownSlot(instr.Opcode)}, addr...)
	}
}

// encodeDS reserves n bytes starting at the current PC without emitting
// any. An out-of-range operand is *V* and leaves PC untouched.
func (a *Assembler) encodeDS(sl *SourceLine) {
	n, err := parseAddr(sl.OperandText)
	if err != nil {
		a.fail(sl, ErrIllegalValue)
		return
	}
	a.pc += n
}

// encodeORG sets PC to an absolute address. An out-of-range operand is
// *V* and leaves PC untouched.
func (a *Assembler) encodeORG(sl *SourceLine) {
	v, err := parseAddr(sl.OperandText)
	if err != nil {
		a.fail(sl, ErrIllegalValue)
		return
	}
	a.pc = v
}

// encodeRegPairWord handles LXI rp,addr: base + 16*rp, followed by the
// 2-byte address (literal or deferred label reference).
func (a *Assembler) encodeRegPairWord(sl *SourceLine, instr cpu.Instruction) {
	opcode := instr.Opcode
	parts := strings.SplitN(sl.OperandText, ",", 2)

	// The register and address parts are independent — check the register
	// regardless of whether a comma (and therefore an address part) was
	// even found, matching asm80.py's unconditional Op_regpr(line_rp_d[0])
	// before it ever looks at the rest of the operand.
	rp, ok := cpu.LookupRegPair(strings.TrimSpace(parts[0]))
	if !ok {
		a.fail(sl, ErrIllegalRegister)
	} else {
		opcode += 16 * byte(rp)
	}

	var addrText string
	if len(parts) == 2 {
		addrText = strings.TrimSpace(parts[1])
	}
	addr := a.addressSlots(sl, addrText)
	sl.Bytes = append([]Slot{knownSlot(opcode)}, addr...)
}
