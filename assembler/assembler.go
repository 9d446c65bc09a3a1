package assembler

import (
	"fmt"
	"strings"

	"github.com/vissasm/asm80/cpu"
	"github.com/vissasm/asm80/symtab"
)

// Assembler holds the state threaded through both passes: the program
// counter, the symbol table and the running error count. It owns this
// state alone; there is no concurrent access, matching the single-
// threaded, synchronous resource model the pipeline runs under.
type Assembler struct {
	symbols *symtab.Table
	pc      uint16
	errors  int
}

// New creates an Assembler ready to run Pass 1 from PC 0.
func New() *Assembler {
	return &Assembler{symbols: symtab.New()}
}

// Result is everything produced by assembling a source program: the final
// (Pass-2-resolved) listing rows, the symbol table and the total error
// count.
type Result struct {
	Lines   []*SourceLine
	Symbols *symtab.Table
	Errors  int
}

// Assemble runs both passes over src and returns the fully resolved
// listing. Per-line errors never abort assembly — they are reported via
// SourceLine.Error. The error return is wrapped from Pass 2, which has no
// failure path and always returns nil, so Assemble never returns an
// error; the signature exists so callers plumb it the same way the
// fatal-I/O paths in cmd/asm80 do.
func (a *Assembler) Assemble(src string) (*Result, error) {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	// strings.Split manufactures a phantom trailing empty element whenever
	// the source ends in "\n" (true of virtually every real file); asm80.py's
	// "for line in source:" never yields that extra line, so trim it here
	// rather than count it as a SourceLine.
	normalized = strings.TrimSuffix(normalized, "\n")
	lines := strings.Split(normalized, "\n")
	provisional := a.pass1(lines)
	final, err := a.pass2(provisional)
	if err != nil {
		return nil, fmt.Errorf("pass 2 resolution failed: %w", err)
	}
	return &Result{Lines: final, Symbols: a.symbols, Errors: a.errors}, nil
}

// encodeOperand dispatches to the operand encoder for instr.Kind, filling
// in sl.Bytes/Extended/Error and, for ORG/DS/EQU, mutating the
// assembler's PC or symbol table directly rather than emitting bytes.
func (a *Assembler) encodeOperand(sl *SourceLine, instr cpu.Instruction) {
	switch instr.Kind {
	case cpu.KindNone:
		sl.Bytes = []Slot{knownSlot(instr.Opcode)}
	case cpu.KindImmByte:
		a.encodeImmByte(sl, instr)
	case cpu.KindRegister:
		a.encodeRegister(sl, instr)
	case cpu.KindAddress:
		a.encodeAddress(sl, instr)
	case cpu.KindExpression:
		a.encodeEquation(sl)
	case cpu.KindRegPair:
		a.encodeRegPair(sl, instr, cpu.LookupRegPair)
	case cpu.KindRegPairBD:
		a.encodeRegPair(sl, instr, cpu.LookupRegPairBD)
	case cpu.KindRegReg:
		a.encodeRegReg(sl, instr)
	case cpu.KindRegPairWord:
		a.encodeRegPairWord(sl, instr)
	case cpu.KindRegImmByte:
		a.encodeRegImmByte(sl, instr)
	case cpu.KindRstIndex:
		a.encodeRstIndex(sl, instr)
	}
}

// fail records a per-line error and increments the running error count.
func (a *Assembler) fail(sl *SourceLine, code ErrorCode) {
	sl.Error = code
	a.errors++
}
