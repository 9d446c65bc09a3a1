package assembler

import (
	"strings"

	"github.com/vissasm/asm80/cpu"
	"github.com/vissasm/asm80/symtab"
)

const maxLabelLen = 6

// indexOutsideQuotes returns the index of the first occurrence of target
// in s that does not fall inside a '...' literal, or -1 if none exists.
func indexOutsideQuotes(s string, target byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			inQuote = !inQuote
			continue
		}
		if c == target && !inQuote {
			return i
		}
	}
	return -1
}

// splitMnemonic splits the remainder of a line (label and comment already
// stripped) into a mnemonic and its operand text on the first run of
// whitespace.
func splitMnemonic(s string) (mnemonic, operand string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// parseLine implements §4.2: trims the line, extracts the comment, the
// label, the mnemonic and the operand text, inserts the label into the
// symbol table, looks up the instruction, and dispatches to the operand
// encoder for its kind.
func (a *Assembler) parseLine(lineNo int, raw string) *SourceLine {
	line := strings.TrimRight(raw, "\r\n")
	line = strings.TrimLeft(line, " \t")
	sl := &SourceLine{LineNo: lineNo}
	if line == "" {
		return sl
	}

	if ci := indexOutsideQuotes(line, ';'); ci >= 0 {
		sl.Comment = line[ci:]
		line = strings.TrimRight(line[:ci], " \t")
		if line == "" {
			return sl
		}
	}

	if li := indexOutsideQuotes(line, ':'); li >= 0 {
		label := line[:li]
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}
		sl.Label = label
		if res := a.symbols.Insert(label, a.pc); res == symtab.Duplicate {
			sl.Error = ErrDuplicateSymbol
			a.errors++
		}
		line = strings.TrimLeft(line[li+1:], " \t")
		if line == "" {
			return sl
		}
	}

	mnemonic, operand := splitMnemonic(line)
	sl.Mnemonic = strings.ToUpper(mnemonic)
	sl.OperandText = operand

	instr, ok := cpu.Lookup(sl.Mnemonic)
	if !ok {
		sl.Error = ErrUndefinedOpcode
		a.errors++
		return sl
	}

	a.encodeOperand(sl, instr)
	return sl
}
