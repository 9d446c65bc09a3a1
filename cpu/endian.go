package cpu

import "encoding/binary"

// SplitWord splits a 16-bit value into its low and high byte, the order in
// which 8080 addresses and 16-bit immediates are always emitted (the
// instruction set is natively little-endian regardless of host byte order).
func SplitWord(v uint16) (lo, hi byte) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[0], b[1]
}

// JoinWord reassembles a little-endian (lo, hi) byte pair into a 16-bit value.
func JoinWord(lo, hi byte) uint16 {
	return binary.LittleEndian.Uint16([]byte{lo, hi})
}
