package evm

// bitvec marks which code bytes are instructions (set) and which are
// immediate push data (clear).
type bitvec []byte

func (bits bitvec) set(pos uint64) {
	bits[pos/8] |= 0x80 >> (pos % 8)
}

// codeSegment checks if the position is in a code segment.
func (bits bitvec) codeSegment(pos uint64) bool {
	return bits[pos/8]&(0x80>>(pos%8)) != 0
}

// codeBitmap collects data locations in code.
func codeBitmap(code []byte) bitvec {
	bits := make(bitvec, len(code)/8+1)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		bits.set(pc)
		pc++
		if op.IsPush() {
			pc += uint64(op - PUSH1 + 1)
		}
	}
	return bits
}
