package assembler

import (
	"strings"

	"github.com/vissasm/asm80/cpu"
)

// isSeparator reports whether b is whitespace separating a HIGH/LOW
// qualifier from the label it modifies.
func isSeparator(b byte) bool { return b == ' ' || b == '\t' }

// byteSlot parses a single byte-context operand token: a HIGH/LOW-
// qualified label (MVI A,HIGH TBL), a bare label (defaults to its low
// byte), or a numeric literal. Anything else is *V*.
func (a *Assembler) byteSlot(sl *SourceLine, text string) Slot {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)
	switch {
	case strings.HasPrefix(upper, "HIGH") && len(text) > 4 && isSeparator(text[4]):
		label := strings.TrimSpace(text[4:])
		return holeSlot(Hole{Kind: HoleHighOf, Label: label})
	case strings.HasPrefix(upper, "LOW") && len(text) > 3 && isSeparator(text[3]):
		label := strings.TrimSpace(text[3:])
		return holeSlot(Hole{Kind: HoleLowOf, Label: label})
	}
	if v, err := parseByte(text); err == nil {
		return knownSlot(v)
	}
	if looksLikeLabel(text) {
		return holeSlot(Hole{Kind: HoleLowOf, Label: text})
	}
	a.fail(sl, ErrIllegalValue)
	return knownSlot(0)
}

// encodeImmByte handles the ImmByte operand kind: for ordinary
// instructions (ACI/ADI/ANI/...) it emits base+imm; DB is the one
// pseudo-op sharing this kind and is dispatched to its own variable-
// length list encoder.
func (a *Assembler) encodeImmByte(sl *SourceLine, instr cpu.Instruction) {
	if sl.Mnemonic == "DB" {
		a.encodeDB(sl)
		return
	}
	imm := a.byteSlot(sl, sl.OperandText)
	sl.Bytes = []Slot{knownSlot(instr.Opcode), imm}
}

// splitRespectingQuotes splits s on commas, treating a run between a pair
// of single quotes as opaque so a comma inside a 'DB' string literal isn't
// mistaken for a list separator.
func splitRespectingQuotes(s string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ',' && !inQuote:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, cur.String())
	return out
}

// encodeDB handles the DB pseudo-op: a comma-separated list of byte
// literals and/or 'string' literals, the latter expanded character by
// character. The result can be arbitrarily long; sl.Bytes carries only
// the first (up to) 3 for the provisional listing row, sl.Extended
// carries the full sequence.
func (a *Assembler) encodeDB(sl *SourceLine) {
	var out []Slot
	for _, tok := range splitRespectingQuotes(sl.OperandText) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
			inner := tok[1 : len(tok)-1]
			for i := 0; i < len(inner); i++ {
				out = append(out, knownSlot(inner[i]))
			}
			continue
		}
		out = append(out, a.byteSlot(sl, tok))
	}
	sl.Extended = out
	if len(out) > 3 {
		sl.Bytes = out[:3]
	} else {
		sl.Bytes = out
	}
}
