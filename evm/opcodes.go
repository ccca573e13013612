package evm

import (
	"fmt"
)

// OpCode is an EVM opcode
type OpCode byte

// IsPush specifies if an opcode is a PUSH opcode.
func (op OpCode) IsPush() bool {
	return op >= PUSH1 && op <= PUSH32
}

// 0x0 range - arithmetic ops.
const (
	STOP OpCode = 0x0
	ADD  OpCode = 0x1
	MUL  OpCode = 0x2
	SUB  OpCode = 0x3
	DIV  OpCode = 0x4
	MOD  OpCode = 0x6
	EXP  OpCode = 0xa
)

// 0x10 range - comparison ops.
const (
	LT     OpCode = 0x10
	GT     OpCode = 0x11
	EQ     OpCode = 0x14
	ISZERO OpCode = 0x15
	AND    OpCode = 0x16
	OR     OpCode = 0x17
	XOR    OpCode = 0x18
	NOT    OpCode = 0x19
)

// 0x50 range - stack, memory and flow ops.
const (
	POP      OpCode = 0x50
	MLOAD    OpCode = 0x51
	MSTORE   OpCode = 0x52
	JUMP     OpCode = 0x56
	JUMPI    OpCode = 0x57
	PC       OpCode = 0x58
	MSIZE    OpCode = 0x59
	JUMPDEST OpCode = 0x5b
)

// 0x60 range - pushes.
const (
	PUSH1 OpCode = 0x60 + iota
	PUSH2
	PUSH3
	PUSH4
	PUSH5
	PUSH6
	PUSH7
	PUSH8
	PUSH9
	PUSH10
	PUSH11
	PUSH12
	PUSH13
	PUSH14
	PUSH15
	PUSH16
	PUSH17
	PUSH18
	PUSH19
	PUSH20
	PUSH21
	PUSH22
	PUSH23
	PUSH24
	PUSH25
	PUSH26
	PUSH27
	PUSH28
	PUSH29
	PUSH30
	PUSH31
	PUSH32
)

// 0x80 range - dups.
const (
	DUP1 OpCode = 0x80 + iota
	DUP2
	DUP3
	DUP4
	DUP5
	DUP6
	DUP7
	DUP8
	DUP9
	DUP10
	DUP11
	DUP12
	DUP13
	DUP14
	DUP15
	DUP16
)

// 0x90 range - swaps.
const (
	SWAP1 OpCode = 0x90 + iota
	SWAP2
	SWAP3
	SWAP4
	SWAP5
	SWAP6
	SWAP7
	SWAP8
	SWAP9
	SWAP10
	SWAP11
	SWAP12
	SWAP13
	SWAP14
	SWAP15
	SWAP16
)

var opCodeToString = map[OpCode]string{
	STOP: "STOP",
	ADD:  "ADD",
	MUL:  "MUL",
	SUB:  "SUB",
	DIV:  "DIV",
	MOD:  "MOD",
	EXP:  "EXP",

	LT:     "LT",
	GT:     "GT",
	EQ:     "EQ",
	ISZERO: "ISZERO",
	AND:    "AND",
	OR:     "OR",
	XOR:    "XOR",
	NOT:    "NOT",

	POP:      "POP",
	MLOAD:    "MLOAD",
	MSTORE:   "MSTORE",
	JUMP:     "JUMP",
	JUMPI:    "JUMPI",
	PC:       "PC",
	MSIZE:    "MSIZE",
	JUMPDEST: "JUMPDEST",
}

func init() {
	for i := 0; i < 32; i++ {
		opCodeToString[PUSH1+OpCode(i)] = fmt.Sprintf("PUSH%d", i+1)
	}
	for i := 0; i < 16; i++ {
		opCodeToString[DUP1+OpCode(i)] = fmt.Sprintf("DUP%d", i+1)
		opCodeToString[SWAP1+OpCode(i)] = fmt.Sprintf("SWAP%d", i+1)
	}
	for op, name := range opCodeToString {
		stringToOp[name] = op
	}
}

func (op OpCode) String() string {
	str := opCodeToString[op]
	if len(str) == 0 {
		return fmt.Sprintf("opcode 0x%x not defined", int(op))
	}
	return str
}

var stringToOp = make(map[string]OpCode)

// StringToOp finds the opcode whose name is stored in `str`.
func StringToOp(str string) (OpCode, bool) {
	op, ok := stringToOp[str]
	return op, ok
}
