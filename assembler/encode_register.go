package assembler

import (
	"strings"

	"github.com/vissasm/asm80/cpu"
)

// encodeRegister handles the Register operand kind: ADD/ADC/SUB/SBB/ANA/
// ORA/XRA/CMP fold the register into the low 3 bits of the base opcode;
// INR/DCR fold it into bits 3-5 instead (base + 8*reg).
func (a *Assembler) encodeRegister(sl *SourceLine, instr cpu.Instruction) {
	reg, ok := cpu.LookupRegister(sl.OperandText)
	opcode := instr.Opcode
	if !ok {
		a.fail(sl, ErrIllegalRegister)
	} else {
		switch sl.Mnemonic {
		case "INR", "DCR":
			opcode += 8 * byte(reg)
		default:
			opcode += byte(reg)
		}
	}
	sl.Bytes = []Slot{knownSlot(opcode)}
}

// encodeRegReg handles MOV dst,src: base + 8*ddd + sss. MOV M,M has no
// encoding (that opcode is HLT) and is rejected as an illegal register
// combination.
func (a *Assembler) encodeRegReg(sl *SourceLine, instr cpu.Instruction) {
	opcode := instr.Opcode
	parts := strings.SplitN(sl.OperandText, ",", 2)
	if len(parts) != 2 {
		a.fail(sl, ErrIllegalRegister)
		sl.Bytes = []Slot{knownSlot(opcode)}
		return
	}
	dst, dok := cpu.LookupRegister(strings.TrimSpace(parts[0]))
	src, sok := cpu.LookupRegister(strings.TrimSpace(parts[1]))
	if !dok || !sok || (dst == cpu.RegM && src == cpu.RegM) {
		a.fail(sl, ErrIllegalRegister)
	} else {
		opcode += 8*byte(dst) + byte(src)
	}
	sl.Bytes = []Slot{knownSlot(opcode)}
}

// encodeRegPair handles DAD/DCX/INX/POP/PUSH (lookup resolves B/D/H/SP or
// B/D/H/PSW) and, via a restricted lookup, LDAX/STAX (B/D only). The
// field is folded in as base + 16*rp.
func (a *Assembler) encodeRegPair(sl *SourceLine, instr cpu.Instruction, lookup func(string) (cpu.RegisterPair, bool)) {
	opcode := instr.Opcode
	rp, ok := lookup(sl.OperandText)
	if !ok {
		a.fail(sl, ErrIllegalRegister)
	} else {
		opcode += 16 * byte(rp)
	}
	sl.Bytes = []Slot{knownSlot(opcode)}
}

// encodeRegImmByte handles MVI reg,byte: base + 8*ddd, followed by the
// immediate byte (which may itself be a HIGH/LOW-qualified or bare label
// reference, resolved the same way a plain immediate is).
func (a *Assembler) encodeRegImmByte(sl *SourceLine, instr cpu.Instruction) {
	opcode := instr.Opcode
	parts := strings.SplitN(sl.OperandText, ",", 2)

	// The register and immediate parts are independent — check the
	// register regardless of whether a comma (and therefore an immediate
	// part) was even found, matching asm80.py's cascading per-part checks
	// rather than short-circuiting on a missing comma.
	reg, ok := cpu.LookupRegister(strings.TrimSpace(parts[0]))
	if !ok {
		a.fail(sl, ErrIllegalRegister)
	} else {
		opcode += 8 * byte(reg)
	}

	var immText string
	if len(parts) == 2 {
		immText = parts[1]
	}
	imm := a.byteSlot(sl, immText)
	sl.Bytes = []Slot{knownSlot(opcode), imm}
}

// encodeRstIndex handles RST n: the operand grammar is a single decimal
// digit 0-7 (not a general byte value — RST 8 is out of range even though
// 8 is itself a legal byte).
func (a *Assembler) encodeRstIndex(sl *SourceLine, instr cpu.Instruction) {
	opcode := instr.Opcode
	text := strings.TrimSpace(sl.OperandText)
	if len(text) == 1 && text[0] >= '0' && text[0] <= '7' {
		opcode += 8 * (text[0] - '0')
	} else {
		a.fail(sl, ErrIllegalValue)
	}
	sl.Bytes = []Slot{knownSlot(opcode)}
}
