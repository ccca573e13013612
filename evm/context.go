package evm

import (
	"github.com/entropyio/go-evm/common"
	"github.com/entropyio/go-evm/config"
	"github.com/holiman/uint256"
)

// ExecutionContext is the mutable state of one run: the code being executed,
// the program counter, the operand stack, memory and the halted flag. A
// context belongs to exactly one run and is never reused.
type ExecutionContext struct {
	Code   []byte
	PC     uint64
	Stack  *Stack
	Memory *Memory

	halted    bool
	jumpdests bitvec // lazily computed on the first jump
}

// NewExecutionContext allocates a fresh stack and memory sized by cfg and
// takes a private copy of code. A nil cfg selects config.DefaultConfig.
func NewExecutionContext(code []byte, cfg *config.Config) *ExecutionContext {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ExecutionContext{
		Code:   common.CopyBytes(code),
		Stack:  NewStack(cfg.StackLimit),
		Memory: NewMemory(cfg.MaxMemoryOffset()),
	}
}

// ReadCode interprets the next n code bytes as a big-endian integer and
// advances the program counter by n. Bytes past the end of the code read as
// zero.
func (ec *ExecutionContext) ReadCode(n uint64) *uint256.Int {
	data := getData(ec.Code, ec.PC, n)
	ec.PC += n
	return new(uint256.Int).SetBytes(data)
}

// getData returns a slice from the data based on the start and size and pads
// up to size with zero's.
func getData(data []byte, start uint64, size uint64) []byte {
	length := uint64(len(data))
	if start > length {
		start = length
	}
	end := start + size
	if end > length {
		end = length
	}
	return common.RightPadBytes(data[start:end], int(size))
}

// Stop halts the context for the rest of the run.
func (ec *ExecutionContext) Stop() {
	ec.halted = true
}

// Halted reports whether Stop has been called.
func (ec *ExecutionContext) Halted() bool {
	return ec.halted
}

// validJumpdest reports whether dest is a JUMPDEST outside push data.
func (ec *ExecutionContext) validJumpdest(dest *uint256.Int) bool {
	udest, overflow := dest.Uint64WithOverflow()
	if overflow || udest >= uint64(len(ec.Code)) {
		return false
	}
	if OpCode(ec.Code[udest]) != JUMPDEST {
		return false
	}
	if ec.jumpdests == nil {
		ec.jumpdests = codeBitmap(ec.Code)
	}
	return ec.jumpdests.codeSegment(udest)
}
