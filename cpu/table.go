package cpu

import "strings"

// OperandKind is the closed set of operand grammars a mnemonic can have.
// Each tag fully determines the grammar and the emitted byte length.
type OperandKind int

const (
	KindNone OperandKind = iota
	KindImmByte
	KindRegister
	KindAddress
	KindExpression
	KindRegPair
	KindRegPairBD
	KindRegReg
	KindRegPairWord
	KindRegImmByte
	KindRstIndex
)

// Instruction is one instruction-table entry: the base opcode byte before
// any operand bits are folded in, and the operand grammar that governs it.
type Instruction struct {
	Opcode byte
	Kind   OperandKind
}

// table is the full 8080 instruction set plus the 8085-only mnemonics
// (ARHL, DSUB, LHLX, RDEL, RSTV, SHLX, RIM, SIM, LDHI, LDSI, JNUI, JUI) and
// the pseudo-ops DB/DW/DS/ORG/EQU. Lookup is case-insensitive.
var table = map[string]Instruction{
	// No-operand instructions
	"CMA": {0x2F, KindNone}, "CMC": {0x3F, KindNone}, "DAA": {0x27, KindNone},
	"DI": {0xF3, KindNone}, "EI": {0xFB, KindNone}, "HLT": {0x76, KindNone},
	"NOP": {0x00, KindNone}, "PCHL": {0xE9, KindNone}, "RAL": {0x17, KindNone},
	"RAR": {0x1F, KindNone}, "RC": {0xD8, KindNone}, "RET": {0xC9, KindNone},
	"RIM": {0x20, KindNone}, "RLC": {0x07, KindNone}, "RM": {0xF8, KindNone},
	"RNC": {0xD0, KindNone}, "RNZ": {0xC0, KindNone}, "RP": {0xF0, KindNone},
	"RPE": {0xE8, KindNone}, "RPO": {0xE0, KindNone}, "RRC": {0x0F, KindNone},
	"RZ": {0xC8, KindNone}, "SIM": {0x30, KindNone}, "SPHL": {0xF9, KindNone},
	"STC": {0x37, KindNone}, "XCHG": {0xEB, KindNone}, "XTHL": {0xE3, KindNone},
	"ARHL": {0x10, KindNone}, "DSUB": {0x08, KindNone}, "LHLX": {0xED, KindNone},
	"RDEL": {0x18, KindNone}, "RSTV": {0xCB, KindNone}, "SHLX": {0xD9, KindNone},

	// Immediate-byte instructions
	"ACI": {0xCE, KindImmByte}, "ADI": {0xC6, KindImmByte}, "ANI": {0xE6, KindImmByte},
	"CPI": {0xFE, KindImmByte}, "ORI": {0xF6, KindImmByte}, "SBI": {0xDE, KindImmByte},
	"SUI": {0xD6, KindImmByte}, "XRI": {0xEE, KindImmByte}, "IN": {0xDB, KindImmByte},
	"OUT": {0xD3, KindImmByte}, "LDHI": {0x28, KindImmByte}, "LDSI": {0x38, KindImmByte},

	// Register instructions
	"ADC": {0x88, KindRegister}, "ADD": {0x80, KindRegister}, "ANA": {0xA0, KindRegister},
	"CMP": {0xB8, KindRegister}, "DCR": {0x05, KindRegister}, "INR": {0x04, KindRegister},
	"ORA": {0xB0, KindRegister}, "SBB": {0x98, KindRegister}, "SUB": {0x90, KindRegister},
	"XRA": {0xA8, KindRegister},

	// Address instructions
	"CALL": {0xCD, KindAddress}, "CC": {0xDC, KindAddress}, "CM": {0xFC, KindAddress},
	"CNC": {0xD4, KindAddress}, "CNZ": {0xC4, KindAddress}, "CP": {0xF4, KindAddress},
	"CPE": {0xEC, KindAddress}, "CPO": {0xE4, KindAddress}, "CZ": {0xCC, KindAddress},
	"JC": {0xDA, KindAddress}, "JM": {0xFA, KindAddress}, "JMP": {0xC3, KindAddress},
	"JNC": {0xD2, KindAddress}, "JNZ": {0xC2, KindAddress}, "JP": {0xF2, KindAddress},
	"JPE": {0xEA, KindAddress}, "JPO": {0xE2, KindAddress}, "JZ": {0xCA, KindAddress},
	"LDA": {0x3A, KindAddress}, "LHLD": {0x2A, KindAddress}, "SHLD": {0x22, KindAddress},
	"STA": {0x32, KindAddress}, "JNUI": {0xDD, KindAddress}, "JUI": {0xFD, KindAddress},

	// Register-pair instructions
	"DAD": {0x09, KindRegPair}, "DCX": {0x0B, KindRegPair}, "INX": {0x03, KindRegPair},
	"POP": {0xC1, KindRegPair}, "PUSH": {0xC5, KindRegPair},

	// Register-pair B/D instructions
	"LDAX": {0x0A, KindRegPairBD}, "STAX": {0x02, KindRegPairBD},

	// Register-register
	"MOV": {0x40, KindRegReg},

	// Register-pair + word
	"LXI": {0x01, KindRegPairWord},

	// Register + immediate byte
	"MVI": {0x06, KindRegImmByte},

	// Restart index
	"RST": {0xC7, KindRstIndex},

	// Pseudo-ops
	"DB": {0x00, KindImmByte}, "DW": {0x00, KindAddress}, "DS": {0x00, KindAddress},
	"ORG": {0x00, KindAddress}, "EQU": {0x00, KindExpression},
}

// directiveSet names the pseudo-ops, each of which is dispatched through a
// special case of its operand kind rather than plain opcode emission.
var directiveSet = map[string]bool{
	"DB": true, "DW": true, "DS": true, "ORG": true, "EQU": true,
}

// Lookup resolves a mnemonic to its instruction-table entry. The comparison
// is case-insensitive; a miss is reported by the ok return value.
func Lookup(mnemonic string) (Instruction, bool) {
	instr, ok := table[strings.ToUpper(mnemonic)]
	return instr, ok
}

// IsDirective reports whether mnemonic names one of the five assembler
// pseudo-ops (DB, DW, DS, ORG, EQU).
func IsDirective(mnemonic string) bool {
	return directiveSet[strings.ToUpper(mnemonic)]
}
