package evm

import (
	"fmt"
	"math/big"
	"strings"
)

// Assemble translates mnemonic source such as "PUSH1 3 PUSH1 4 ADD STOP"
// into bytecode. PUSHn mnemonics take one numeric operand (decimal or 0x
// hex) that must fit in n bytes.
func Assemble(src string) ([]byte, error) {
	var (
		code   []byte
		tokens = strings.Fields(src)
	)
	for i := 0; i < len(tokens); i++ {
		op, ok := StringToOp(strings.ToUpper(tokens[i]))
		if !ok {
			return nil, fmt.Errorf("asm: unknown mnemonic %q", tokens[i])
		}
		code = append(code, byte(op))
		if !op.IsPush() {
			continue
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("asm: %v without operand", op)
		}
		i++
		v, ok := new(big.Int).SetString(tokens[i], 0)
		if !ok || !ValidWord(v) {
			return nil, fmt.Errorf("asm: invalid operand %q for %v", tokens[i], op)
		}
		size := int(op-PUSH1) + 1
		if (v.BitLen()+7)/8 > size {
			return nil, fmt.Errorf("asm: operand %v does not fit %v", v, op)
		}
		code = append(code, v.FillBytes(make([]byte, size))...)
	}
	return code, nil
}

// Disassemble renders code one instruction per line, prefixed by its
// offset. Push data running past the end of the code is shown as read,
// zero-padded.
func Disassemble(code []byte) []string {
	var out []string
	for pc := uint64(0); pc < uint64(len(code)); pc++ {
		op := OpCode(code[pc])
		if !op.IsPush() {
			out = append(out, fmt.Sprintf("%05d: %v", pc, op))
			continue
		}
		size := uint64(op-PUSH1) + 1
		arg := getData(code, pc+1, size)
		out = append(out, fmt.Sprintf("%05d: %v 0x%x", pc, op, arg))
		pc += size
	}
	return out
}
