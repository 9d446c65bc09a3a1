package assembler

// pass1 runs the line parser over every source line in order, stamping
// each emitting line with the PC it occupies before advancing the PC by
// its byte count. ORG/DS/EQU touch the PC or symbol table directly from
// inside their own encoders and never reach the stamping step here, since
// they emit no bytes.
func (a *Assembler) pass1(lines []string) []*SourceLine {
	out := make([]*SourceLine, 0, len(lines))
	for i, raw := range lines {
		sl := a.parseLine(i+1, raw)
		if n := sl.ByteCount(); n > 0 {
			sl.HasAddress = true
			sl.Address = a.pc
			a.pc += uint16(n)
		}
		out = append(out, sl)
	}
	return out
}
