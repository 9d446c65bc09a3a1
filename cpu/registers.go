package cpu

import "strings"

// Register encodes the 3-bit SSS/DDD register field folded into opcodes for
// the Register, RegReg and RegImmByte operand kinds.
type Register uint8

// Register field values. PSW shares B's ordinal because it only ever
// appears where plain-register context (PUSH PSW, POP PSW) is legal — those
// go through RegisterPair, not Register.
const (
	RegB Register = 0
	RegC Register = 1
	RegD Register = 2
	RegE Register = 3
	RegH Register = 4
	RegL Register = 5
	RegM Register = 6
	RegA Register = 7
)

// RegisterPair encodes the 2-bit RP field folded into opcodes for the
// RegPair, RegPairBD and RegPairWord operand kinds.
type RegisterPair uint8

const (
	RegPairB   RegisterPair = 0
	RegPairD   RegisterPair = 1
	RegPairH   RegisterPair = 2
	RegPairSP  RegisterPair = 3
	RegPairPSW RegisterPair = 3
)

var registerNames = map[string]Register{
	"B": RegB, "C": RegC, "D": RegD, "E": RegE,
	"H": RegH, "L": RegL, "M": RegM, "A": RegA,
	"PSW": 0,
}

var regPairNames = map[string]RegisterPair{
	"B": RegPairB, "D": RegPairD, "H": RegPairH,
	"SP": RegPairSP, "PSW": RegPairPSW,
}

var regPairBDNames = map[string]RegisterPair{
	"B": RegPairB, "D": RegPairD,
}

// LookupRegister resolves a register mnemonic (B,C,D,E,H,L,M,A,PSW) to its
// SSS/DDD field value. The comparison is case-insensitive.
func LookupRegister(name string) (Register, bool) {
	r, ok := registerNames[strings.ToUpper(strings.TrimSpace(name))]
	return r, ok
}

// LookupRegPair resolves a register-pair mnemonic (B,D,H,SP,PSW) to its RP
// field value, for DAD/DCX/INX/POP/PUSH/LXI.
func LookupRegPair(name string) (RegisterPair, bool) {
	rp, ok := regPairNames[strings.ToUpper(strings.TrimSpace(name))]
	return rp, ok
}

// LookupRegPairBD resolves the restricted B/D register-pair mnemonic used
// by LDAX/STAX.
func LookupRegPairBD(name string) (RegisterPair, bool) {
	rp, ok := regPairBDNames[strings.ToUpper(strings.TrimSpace(name))]
	return rp, ok
}
