package assembler_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/vissasm/asm80/assembler"
)

// assembleAndMatchHex assembles src and checks the concatenation of every
// line's resolved bytes against an expected byte sequence given as hex.
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New()
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if result.Errors != 0 {
		t.Fatalf("[%s] unexpected assembly errors (%d)", name, result.Errors)
	}

	var got []byte
	for _, sl := range result.Lines {
		source := sl.Bytes
		if len(sl.Extended) > 0 {
			source = sl.Extended
		}
		for _, s := range source {
			if !s.Known {
				t.Fatalf("[%s] line %d has an unresolved byte slot", name, sl.LineNo)
			}
			got = append(got, s.Value)
		}
	}

	if len(got) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(got), expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, got)
			break
		}
	}
}

func TestBasicEncodings(t *testing.T) {
	tests := []struct{ name, src, hex string }{
		{"MOV_C_B", "MOV C,B", "48"},
		{"MVI_C_Imm", "MVI C,0A1H", "0E A1"},
		{"JMP_Abs", "JMP 1234H", "C3 34 12"},
		{"ADD_M", "ADD M", "86"},
		{"ANI_Imm", "ANI 0FH", "E6 0F"},
		{"LXI_H_Abs", "LXI H,1000H", "21 00 10"},
		{"PUSH_B", "PUSH B", "C5"},
		{"RST_7", "RST 7", "FF"},
		{"DAD_H", "DAD H", "29"},
		{"LDAX_D", "LDAX D", "1A"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestRegRegEncodingRejectsMM(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("MOV M,M")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 {
		t.Fatalf("expected MOV M,M to be rejected")
	}
	if result.Lines[0].Error != assembler.ErrIllegalRegister {
		t.Fatalf("expected *R*, got %q", result.Lines[0].Error)
	}
}

// Scenario 1 from the spec: a JMP back to a label defined on the line
// before, resolved in Pass 2 like every label operand.
func TestScenarioBackwardJMP(t *testing.T) {
	src := "START: MVI   C,0A1H   ;load\n       JMP   START\n"
	assembleAndMatchHex(t, "BackwardJMP", src, "0E A1 C3 00 00")
}

// Scenario 2: ORG then DS advances the PC without emitting bytes.
func TestScenarioOrgDs(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("ORG 100H\nDS 3\nHLT\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors != 0 {
		t.Fatalf("unexpected errors: %d", result.Errors)
	}
	hltLine := result.Lines[2]
	if !hltLine.HasAddress || hltLine.Address != 0x0103 {
		t.Fatalf("expected HLT at 0103, got %04X (hasAddr=%v)", hltLine.Address, hltLine.HasAddress)
	}
	if hltLine.Bytes[0].Value != 0x76 {
		t.Fatalf("expected HLT opcode 76, got %02X", hltLine.Bytes[0].Value)
	}
}

// Scenario 3: EQU with a purely numeric expression resolves in Pass 1 and
// is usable as an immediate on a later line.
func TestScenarioEquNumeric(t *testing.T) {
	src := "VAL:  EQU 5+3\n      MVI A,VAL\n"
	asm := assembler.New()
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	v, ok := result.Symbols.Lookup("VAL")
	if !ok || v != 8 {
		t.Fatalf("expected VAL=0008, got %04X (ok=%v)", v, ok)
	}
	assembleAndMatchHex(t, "EquNumeric", src, "3E 08")
}

// Scenario 4: a forward-referenced address operand and a DB at that
// address, both resolved in Pass 2.
func TestScenarioForwardAddressAndDB(t *testing.T) {
	src := "      ORG 10H\n      LXI H,TBL\nTBL:  DB 1,2,3\n"
	asm := assembler.New()
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors != 0 {
		t.Fatalf("unexpected errors: %d", result.Errors)
	}
	lxi := result.Lines[1]
	wantLXI := []byte{0x21, 0x13, 0x00} // TBL lands right after LXI (ORG 10H + 3 bytes = 13H)
	for i, s := range lxi.Bytes {
		if !s.Known || s.Value != wantLXI[i] {
			t.Fatalf("LXI byte %d: want %02X, got known=%v value=%02X", i, wantLXI[i], s.Known, s.Value)
		}
	}
	db := result.Lines[2]
	wantDB := []byte{1, 2, 3}
	for i, s := range db.Bytes {
		if !s.Known || s.Value != wantDB[i] {
			t.Fatalf("DB byte %d: want %d, got known=%v value=%d", i, wantDB[i], s.Known, s.Value)
		}
	}
}

// Scenario 5: HIGH-qualified forward label reference.
func TestScenarioHighByte(t *testing.T) {
	src := "      MVI A, HIGH TBL\n      ORG 1234H\nTBL:  DB 0\n"
	asm := assembler.New()
	result, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors != 0 {
		t.Fatalf("unexpected errors: %d", result.Errors)
	}
	mvi := result.Lines[0]
	if mvi.Bytes[0].Value != 0x3E || mvi.Bytes[1].Value != 0x12 {
		t.Fatalf("expected 3E 12, got %02X %02X", mvi.Bytes[0].Value, mvi.Bytes[1].Value)
	}
}

// Scenario 6: a single undefined opcode suppresses HEX emission but not
// the listing. The suppression happens in cmd/asm80, which has no test;
// here we only check the error is surfaced and counted.
func TestScenarioUndefinedOpcode(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("FOOBAR\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", result.Errors)
	}
	if result.Lines[0].Error != assembler.ErrUndefinedOpcode {
		t.Fatalf("expected *O*, got %q", result.Lines[0].Error)
	}
}

func TestBoundaryDB(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("DB 256\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 {
		t.Fatalf("expected DB 256 to be out of range")
	}
	if result.Lines[0].Error != assembler.ErrIllegalValue {
		t.Fatalf("expected *V*, got %q", result.Lines[0].Error)
	}
}

func TestBoundaryDW(t *testing.T) {
	assembleAndMatchHex(t, "DW_Max", "DW 0FFFFH", "FF FF")

	asm := assembler.New()
	result, err := asm.Assemble("DW 10000H\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 || result.Lines[0].Error != assembler.ErrIllegalValue {
		t.Fatalf("expected *V* for DW 10000H, got errors=%d code=%q", result.Errors, result.Lines[0].Error)
	}
}

func TestLabelTruncation(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("TOOLONGLABEL: NOP\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Lines[0].Label != "TOOLON" {
		t.Fatalf("expected label truncated to 6 chars, got %q", result.Lines[0].Label)
	}
}

func TestDuplicateSymbol(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("LBL: NOP\nLBL: NOP\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Lines[1].Error != assembler.ErrDuplicateSymbol {
		t.Fatalf("expected *D* on second definition, got %q", result.Lines[1].Error)
	}
	v, ok := result.Symbols.Lookup("LBL")
	if !ok || v != 0 {
		t.Fatalf("expected first definition (0000) to win, got %04X (ok=%v)", v, ok)
	}
}

func TestRstOutOfRange(t *testing.T) {
	assembleAndMatchHex(t, "RST_7", "RST 7", "FF")

	asm := assembler.New()
	result, err := asm.Assemble("RST 8\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 || result.Lines[0].Error != assembler.ErrIllegalValue {
		t.Fatalf("expected *V* for RST 8, got errors=%d code=%q", result.Errors, result.Lines[0].Error)
	}
}

func TestEquDivisionByZero(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("X: EQU 4/0\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 || result.Lines[0].Error != assembler.ErrIllegalValue {
		t.Fatalf("expected *V* for division by zero, got errors=%d code=%q", result.Errors, result.Lines[0].Error)
	}
	if result.Symbols.Has("X") {
		t.Fatalf("expected tentative symbol X to be removed on failed EQU")
	}
}

func TestDBStringExpandsCharByChar(t *testing.T) {
	// Scenario wording in the spec ("DB 'AB', 41H, ... produces five
	// identical bytes") is inconsistent with the documented char-by-char
	// string rule, which would make 'AB' contribute two distinct bytes.
	// This test exercises the documented rule faithfully with a
	// single-character literal, which does produce five identical 41 bytes.
	assembleAndMatchHex(t, "DBCharByChar", "DB 'A', 41H, 65, 101Q, 01000001B", "41 41 41 41 41")
}

func TestUndefinedSymbolLeavesAddressUndefined(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("JMP NOWHERE\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if result.Errors == 0 || result.Lines[0].Error != assembler.ErrUndefinedSymbol {
		t.Fatalf("expected *U*, got errors=%d code=%q", result.Errors, result.Lines[0].Error)
	}
	for i, s := range result.Lines[0].Bytes[1:] {
		if !s.Undefined {
			t.Fatalf("byte %d: expected Undefined slot, got known=%v value=%02X", i+1, s.Known, s.Value)
		}
	}
}
