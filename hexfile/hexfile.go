// Package hexfile emits the Intel HEX object file described in §4.7:
// one data record per (up to) 3-byte run of resolved output, in source
// order, terminated by the end-of-file record.
package hexfile

import (
	"fmt"
	"io"

	"github.com/vissasm/asm80/assembler"
)

// chunk is one record's worth of bytes at a known starting address.
type chunk struct {
	addr  uint16
	bytes []byte
}

// chunks extracts the HEX records a single listing line contributes: its
// primary (up to 3) bytes, plus one chunk per continuation group for a
// DB whose Extended sequence ran past 3 bytes. A line with no address
// (ORG/DS/EQU) contributes nothing, and a line stops contributing at the
// first 3-byte group holding an unresolved/undefined byte (earlier groups
// are kept) — callers are expected to only reach this with Errors == 0, at which
// point no slot is ever unresolved or Undefined, but the check is kept
// defensive rather than assumed.
func chunks(sl *assembler.SourceLine) []chunk {
	if !sl.HasAddress {
		return nil
	}
	source := sl.Bytes
	if len(sl.Extended) > 0 {
		source = sl.Extended
	}
	var out []chunk
	addr := sl.Address
	for i := 0; i < len(source); i += 3 {
		end := i + 3
		if end > len(source) {
			end = len(source)
		}
		group := source[i:end]
		data := make([]byte, 0, len(group))
		for _, s := range group {
			if !s.Known {
				return out
			}
			data = append(data, s.Value)
		}
		out = append(out, chunk{addr: addr, bytes: data})
		addr += uint16(len(data))
	}
	return out
}

func checksum(bytes []byte) byte {
	var sum byte
	for _, b := range bytes {
		sum += b
	}
	return byte(-int8(sum))
}

func writeRecord(w io.Writer, addr uint16, recType byte, data []byte) error {
	header := []byte{byte(len(data)), byte(addr >> 8), byte(addr), recType}
	all := append(append([]byte{}, header...), data...)
	_, err := fmt.Fprintf(w, ":%02X%04X%02X%s%02X\n", len(data), addr, recType, fmt.Sprintf("%X", data), checksum(all))
	return err
}

// Write emits the HEX records for a fully-resolved assembly. The caller
// is responsible for the "runs only if errors == 0" rule in §4.7/§7 —
// typically by not creating the output file at all when result.Errors is
// nonzero, matching scenario 6's "final HEX file is not created".
func Write(w io.Writer, result *assembler.Result) error {
	for _, sl := range result.Lines {
		for _, c := range chunks(sl) {
			if err := writeRecord(w, c.addr, 0x00, c.bytes); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, ":00000001FF\n")
	return err
}
