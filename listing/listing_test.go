package listing_test

import (
	"strings"
	"testing"

	"github.com/vissasm/asm80/assembler"
	"github.com/vissasm/asm80/listing"
)

func TestWriteProvisionalShowsUnresolvedHoles(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("JMP FWD\nFWD: NOP\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	var sb strings.Builder
	// Assemble has already run both passes, so its rows carry no holes.
	// A row still holding the two address holes Pass 1 leaves for
	// "JMP FWD" is constructed directly and written ahead of them.
	pending := &assembler.SourceLine{
		LineNo: 1, HasAddress: true, Mnemonic: "JMP", OperandText: "FWD",
		Bytes: []assembler.Slot{
			{Known: true, Value: 0xC3},
			{Hole: &assembler.Hole{Kind: assembler.HoleLowAddr, Label: "FWD"}},
			{Hole: &assembler.Hole{Kind: assembler.HoleHighAddr, Label: "FWD"}},
		},
	}
	rows := append([]*assembler.SourceLine{pending}, result.Lines...)
	if err := listing.WriteProvisional(&sb, rows); err != nil {
		t.Fatalf("WriteProvisional failed: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "ERR  LINE  ADDR") {
		t.Fatalf("expected header line, got: %q", out[:40])
	}
	if !strings.Contains(out, "JMP") {
		t.Fatalf("expected JMP mnemonic in output:\n%s", out)
	}
	if !strings.Contains(out, "C3 ?? ??") {
		t.Fatalf("expected unresolved holes rendered as ??:\n%s", out)
	}
}

func TestWriteFinalIncludesSymbolsAndErrorCount(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("START: NOP\n       JMP START\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	var sb strings.Builder
	if err := listing.WriteFinal(&sb, result); err != nil {
		t.Fatalf("WriteFinal failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Symbols:") {
		t.Fatalf("expected Symbols: trailer, got:\n%s", out)
	}
	if !strings.Contains(out, "START") {
		t.Fatalf("expected START symbol listed, got:\n%s", out)
	}
	if !strings.Contains(out, "Total Errors = 0") {
		t.Fatalf("expected zero errors, got:\n%s", out)
	}
	if strings.ContainsRune(out, '?') {
		t.Fatalf("final listing must not contain any '?' placeholder:\n%s", out)
	}
}

func TestWriteFinalReportsNonzeroErrors(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("NOTAMNEMONIC\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	var sb strings.Builder
	if err := listing.WriteFinal(&sb, result); err != nil {
		t.Fatalf("WriteFinal failed: %v", err)
	}
	if !strings.Contains(sb.String(), "Total Errors = 1") {
		t.Fatalf("expected Total Errors = 1, got:\n%s", sb.String())
	}
}

func TestContinuationRowsForLongDB(t *testing.T) {
	asm := assembler.New()
	result, err := asm.Assemble("DB 1,2,3,4,5,6,7\n")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}

	var sb strings.Builder
	if err := listing.WriteProvisional(&sb, result.Lines); err != nil {
		t.Fatalf("WriteProvisional failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// header + primary row + 2 continuation rows (4 bytes left -> 3 + 1)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header + 3 rows), got %d:\n%s", len(lines), sb.String())
	}
}
