// Package listing renders the provisional and final assembler listings:
// the fixed-width per-line row format of §4.8, the continuation rows for
// an over-length DB, and the final listing's symbol-table trailer.
package listing

import (
	"fmt"
	"io"

	"github.com/vissasm/asm80/assembler"
)

const header = "ERR  LINE  ADDR B1 B2 B3  LABEL:  MNE   OPERAND     COMMENT\n"

// renderByte renders one Slot for a listing row: a resolved hex byte, a
// still-unresolved hole as "??" (only ever seen in the provisional
// listing, before Pass 2 runs), or "--" for a hole Pass 2 gave up on.
func renderByte(s assembler.Slot) string {
	switch {
	case s.Known:
		return fmt.Sprintf("%02X", s.Value)
	case s.Undefined:
		return "--"
	case s.Hole != nil:
		return "??"
	default:
		return ""
	}
}

func byteField(bytes []assembler.Slot, i, width int) string {
	var s string
	if i < len(bytes) {
		s = renderByte(bytes[i])
	}
	return fmt.Sprintf("%-*s", width, s)
}

// formatRow renders one primary listing row. bytes is sl.Bytes — the
// first (up to) 3 slots of a DB's full sequence, or the complete set for
// any other line.
func formatRow(sl *assembler.SourceLine) string {
	errCol := fmt.Sprintf("%-4s ", string(sl.Error))
	lineCol := fmt.Sprintf("%4d  ", sl.LineNo)
	addrCol := "    "
	if sl.HasAddress {
		addrCol = fmt.Sprintf("%04X", sl.Address)
	}
	b1 := byteField(sl.Bytes, 0, 3)
	b2 := byteField(sl.Bytes, 1, 3)
	b3 := byteField(sl.Bytes, 2, 5)

	label := sl.Label
	if label != "" {
		label += ":"
	}
	labelCol := fmt.Sprintf("%-8s", label)
	mneCol := fmt.Sprintf("%-5s ", sl.Mnemonic)
	operandCol := fmt.Sprintf("%-11s", sl.OperandText)

	return fmt.Sprintf("%s%s%s %s%s%s %s%s%s%s\n",
		errCol, lineCol, addrCol, b1, b2, b3, labelCol, mneCol, operandCol, sl.Comment)
}

// formatContinuation renders a continuation row for a DB whose sequence
// overran 3 bytes: address and bytes only, per §4.5 rule 3.
func formatContinuation(addr uint16, group []assembler.Slot) string {
	b1 := byteField(group, 0, 3)
	b2 := byteField(group, 1, 3)
	b3 := byteField(group, 2, 5)
	return fmt.Sprintf("          %04X %s%s%s\n", addr, b1, b2, b3)
}

// writeRows writes the header followed by one row per line, with DB
// continuation rows for any line whose Extended sequence outran Bytes.
func writeRows(w io.Writer, lines []*assembler.SourceLine) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, sl := range lines {
		if _, err := io.WriteString(w, formatRow(sl)); err != nil {
			return err
		}
		if len(sl.Extended) <= len(sl.Bytes) {
			continue
		}
		addr := sl.Address + uint16(len(sl.Bytes))
		for i := len(sl.Bytes); i < len(sl.Extended); i += 3 {
			end := i + 3
			if end > len(sl.Extended) {
				end = len(sl.Extended)
			}
			if _, err := io.WriteString(w, formatContinuation(addr, sl.Extended[i:end])); err != nil {
				return err
			}
			addr += uint16(end - i)
		}
	}
	return nil
}

// WriteProvisional writes the provisional listing: rows only, with no
// symbol table or error-count trailer. A slot still holding a Hole renders
// as "??"; rows taken from a finished Assemble result have already been
// through Pass 2 and carry none.
func WriteProvisional(w io.Writer, lines []*assembler.SourceLine) error {
	return writeRows(w, lines)
}

const separator = "--------------------------------------------------------------\n"

// WriteFinal writes the Pass-2-resolved listing: rows, then the
// separator/"Symbols:"/sorted-5-per-line/separator/legend/"Total
// Errors" trailer specified in §6.
func WriteFinal(w io.Writer, result *assembler.Result) error {
	if err := writeRows(w, result.Lines); err != nil {
		return err
	}
	if _, err := io.WriteString(w, separator); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "Symbols:\n"); err != nil {
		return err
	}
	symbols := result.Symbols.Sorted()
	for i, sym := range symbols {
		if _, err := fmt.Fprintf(w, "%-6s %04X  ", sym.Name, sym.Value); err != nil {
			return err
		}
		if (i+1)%5 == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if len(symbols)%5 != 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, separator); err != nil {
		return err
	}
	legend := "*O* undefined opcode  *V* illegal value  *R* illegal register  *U* undefined symbol  *D* duplicate symbol\n"
	if _, err := io.WriteString(w, legend); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total Errors = %d\n", result.Errors)
	return err
}
