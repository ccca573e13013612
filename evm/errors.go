package evm

import (
	"errors"
	"fmt"
	"math/big"
)

// List evm execution errors
var (
	ErrInvalidOperand      = errors.New("invalid operand")
	ErrStackOverflow       = errors.New("stack overflow")
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrInvalidMemoryAccess = errors.New("invalid memory access")
	ErrInvalidCodeOffset   = errors.New("invalid code offset")
	ErrUnknownOpcode       = errors.New("unknown opcode")
	ErrInvalidJump         = errors.New("invalid jump destination")
	ErrDuplicateOpcode     = errors.New("opcode already registered")
)

// InvalidOperandError wraps ErrInvalidOperand with the rejected value.
type InvalidOperandError struct {
	Value *big.Int
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidOperand, e.Value)
}

func (e *InvalidOperandError) Is(target error) bool { return target == ErrInvalidOperand }

// StackOverflowError wraps ErrStackOverflow with the stack length and limit.
type StackOverflowError struct {
	Len   int
	Limit int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("%v (%d > %d)", ErrStackOverflow, e.Len, e.Limit)
}

func (e *StackOverflowError) Is(target error) bool { return target == ErrStackOverflow }

// StackUnderflowError wraps ErrStackUnderflow with the stack length and the
// number of items the instruction required.
type StackUnderflowError struct {
	Len      int
	Required int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("%v (%d < %d)", ErrStackUnderflow, e.Len, e.Required)
}

func (e *StackUnderflowError) Is(target error) bool { return target == ErrStackUnderflow }

// MemoryAccessError wraps ErrInvalidMemoryAccess. Value is nil for loads.
type MemoryAccessError struct {
	Offset *big.Int
	Value  *big.Int
	Limit  int64
}

func (e *MemoryAccessError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%v: offset %v value %v (limit %d)", ErrInvalidMemoryAccess, e.Offset, e.Value, e.Limit)
	}
	return fmt.Sprintf("%v: offset %v (limit %d)", ErrInvalidMemoryAccess, e.Offset, e.Limit)
}

func (e *MemoryAccessError) Is(target error) bool { return target == ErrInvalidMemoryAccess }

// CodeOffsetError wraps ErrInvalidCodeOffset with the program counter that
// fell outside the code.
type CodeOffsetError struct {
	PC      uint64
	CodeLen int
}

func (e *CodeOffsetError) Error() string {
	return fmt.Sprintf("%v: pc %d, code length %d", ErrInvalidCodeOffset, e.PC, e.CodeLen)
}

func (e *CodeOffsetError) Is(target error) bool { return target == ErrInvalidCodeOffset }

// UnknownOpcodeError wraps ErrUnknownOpcode with the offending opcode.
type UnknownOpcodeError struct {
	Op OpCode
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%v: 0x%02x", ErrUnknownOpcode, byte(e.Op))
}

func (e *UnknownOpcodeError) Is(target error) bool { return target == ErrUnknownOpcode }

// InvalidJumpError wraps ErrInvalidJump with the requested destination.
type InvalidJumpError struct {
	Dest *big.Int
}

func (e *InvalidJumpError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidJump, e.Dest)
}

func (e *InvalidJumpError) Is(target error) bool { return target == ErrInvalidJump }

// ExecutionError is returned by the interpreter for every failed step. PC is
// the program counter before the opcode was fetched.
type ExecutionError struct {
	PC  uint64
	Op  OpCode
	Err error
}

func (e *ExecutionError) Error() string {
	if errors.Is(e.Err, ErrInvalidCodeOffset) {
		return fmt.Sprintf("evm: %v", e.Err)
	}
	return fmt.Sprintf("evm: %v at pc=%d (%v)", e.Err, e.PC, e.Op)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
