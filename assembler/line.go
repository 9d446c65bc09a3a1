// Package assembler implements the 8080/8085 two-pass translation
// pipeline: line parsing, mnemonic-to-opcode lookup, operand encoding,
// symbol table construction and forward-reference resolution.
package assembler

// ErrorCode is one of the closed set of per-line error markers that
// surface in the listing's ERR column.
type ErrorCode string

const (
	ErrNone            ErrorCode = ""
	ErrUndefinedOpcode ErrorCode = "*O*"
	ErrIllegalValue    ErrorCode = "*V*"
	ErrIllegalRegister ErrorCode = "*R*"
	ErrUndefinedSymbol ErrorCode = "*U*"
	ErrDuplicateSymbol ErrorCode = "*D*"
)

// HoleKind names what a Slot's placeholder depends on.
type HoleKind int

const (
	// HoleLowAddr/HoleHighAddr are the two halves of a 3-byte address
	// reference (CALL/JMP/LDA/... and LXI's word half); they resolve
	// together once the target label is known.
	HoleLowAddr HoleKind = iota
	HoleHighAddr
	// HoleLowOf/HoleHighOf are single-byte references produced by a bare
	// label or a HIGH/LOW-qualified label used where a byte is expected.
	HoleLowOf
	HoleHighOf
)

// Hole is an unresolved byte position: its final value depends on a label
// that may not be defined yet. It replaces the textual "??" placeholder
// with a typed field that Pass 2 fills in directly.
type Hole struct {
	Kind   HoleKind
	Label  string
	Offset int32 // label+N / label-N; zero otherwise
}

// Slot is one emitted byte position: either already known, carrying a
// Hole that Pass 2 must resolve, or — after Pass 2 gives up on a Hole
// whose label was never defined — Undefined, which the listing renders
// as "--" rather than leave a textual "??" placeholder behind (see
// DESIGN.md on reconciling the two placeholder conventions in §3/§4.6).
type Slot struct {
	Known     bool
	Value     byte
	Hole      *Hole
	Undefined bool
}

func knownSlot(v byte) Slot { return Slot{Known: true, Value: v} }

func holeSlot(h Hole) Slot { return Slot{Hole: &h} }

// SourceLine is the record produced by Pass 1 and consumed/finalized by
// Pass 2: one row of the listing.
type SourceLine struct {
	LineNo int
	Error  ErrorCode

	HasAddress bool
	Address    uint16

	// Bytes holds up to 3 slots for a normal instruction/directive row.
	Bytes []Slot
	// Extended holds the full byte sequence of every DB line, whatever its
	// length; Bytes holds only its first (up to) 3.
	Extended []Slot

	Label       string
	Mnemonic    string
	OperandText string
	Comment     string

	// equLabel/equExpr carry the parsed EQU expression through to Pass 2;
	// unset for every other kind of line.
	equLabel string
	equExpr  *Expr
}

// ByteCount reports how many bytes this line emits (0 for directives like
// ORG/DS/EQU that only affect the program counter or symbol table).
func (l *SourceLine) ByteCount() int {
	if len(l.Extended) > 0 {
		return len(l.Extended)
	}
	return len(l.Bytes)
}
