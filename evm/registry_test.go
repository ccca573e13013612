package evm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	called := false
	require.NoError(t, r.Register(0x0c, "NOOP", func(ec *ExecutionContext) error {
		called = true
		return nil
	}))

	in, err := r.Lookup(0x0c)
	require.NoError(t, err)
	assert.Equal(t, OpCode(0x0c), in.Op)
	assert.Equal(t, "NOOP", in.Name)
	assert.Equal(t, "NOOP", in.String())

	require.NoError(t, in.Execute(NewExecutionContext(nil, nil)))
	assert.True(t, called)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(0x0c, "FIRST", opJumpdest))

	err := r.Register(0x0c, "SECOND", opStop)
	assert.ErrorIs(t, err, ErrDuplicateOpcode)

	in, err := r.Lookup(0x0c)
	require.NoError(t, err)
	assert.Equal(t, "FIRST", in.Name, "first registration wins")
}

func TestRegistryRejectsNilBehavior(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(0x0c, "NIL", nil))
	_, err := r.Lookup(0x0c)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestRegistryUnknownOpcode(t *testing.T) {
	r := NewStandardRegistry()
	_, err := r.Lookup(0xff)

	var uerr *UnknownOpcodeError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, OpCode(0xff), uerr.Op)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestStandardRegistry(t *testing.T) {
	r := NewStandardRegistry()
	for _, op := range []OpCode{STOP, ADD, MUL, PUSH1, PUSH32, DUP1, DUP16, SWAP1, SWAP16, MSTORE, JUMPDEST} {
		in, err := r.Lookup(op)
		require.NoError(t, err, "%v", op)
		assert.Equal(t, op.String(), in.Name)
	}

	list := r.Instructions()
	assert.Len(t, list, 23+32+16+16)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].Op < list[i].Op)
	}
}

func TestStandardRegistryIndependent(t *testing.T) {
	a := NewStandardRegistry()
	b := NewStandardRegistry()
	require.NoError(t, a.Register(0x0c, "EXTRA", opJumpdest))
	_, err := b.Lookup(0x0c)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestOpCodeString(t *testing.T) {
	assert.Equal(t, "PUSH1", PUSH1.String())
	assert.Equal(t, "PUSH32", PUSH32.String())
	assert.Equal(t, "SWAP16", SWAP16.String())
	assert.Equal(t, "opcode 0xff not defined", OpCode(0xff).String())

	op, ok := StringToOp("DUP3")
	assert.True(t, ok)
	assert.Equal(t, DUP3, op)
	_, ok = StringToOp("CALL")
	assert.False(t, ok)
}
