package entropy

import (
	"errors"
	"math/big"
	"testing"

	"github.com/entropyio/go-evm/evm"
	"github.com/entropyio/go-evm/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigs(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestEVM_Execute(t *testing.T) {
	tests := []struct {
		name       string
		code       []byte
		wantStack  []*big.Int
		wantHalted bool
		wantErr    error
	}{
		{
			name:       "add",
			code:       []byte{0x60, 0x03, 0x60, 0x04, 0x01, 0x00},
			wantStack:  bigs(7),
			wantHalted: true,
		},
		{
			name:       "mul",
			code:       []byte{0x60, 0x05, 0x60, 0x06, 0x02, 0x00},
			wantStack:  bigs(30),
			wantHalted: true,
		},
		{
			name:       "stop",
			code:       []byte{0x00},
			wantStack:  bigs(),
			wantHalted: true,
		},
		{
			name:      "add underflow",
			code:      []byte{0x01},
			wantStack: bigs(),
			wantErr:   evm.ErrStackUnderflow,
		},
		{
			name:      "unknown opcode",
			code:      []byte{0xff},
			wantStack: bigs(),
			wantErr:   evm.ErrUnknownOpcode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runtime.Execute(tt.code, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStack, res.Stack())
			assert.Equal(t, tt.wantHalted, res.Halted())
		})
	}
}

func TestEVM_UnknownOpcodeValue(t *testing.T) {
	_, err := runtime.Execute([]byte{0xff}, nil)

	var uerr *evm.UnknownOpcodeError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, byte(255), byte(uerr.Op))
}

func TestEVM_AssembledProgram(t *testing.T) {
	// sum 1..5 into memory word 0
	code, err := evm.Assemble(`
		PUSH1 5
		JUMPDEST
		DUP1 PUSH1 0 MLOAD ADD PUSH1 0 MSTORE
		PUSH1 1 SWAP1 SUB
		DUP1 PUSH1 2 JUMPI
		POP STOP`)
	require.NoError(t, err)

	res, err := runtime.Execute(code, &runtime.Config{StepLimit: 1000})
	require.NoError(t, err)
	assert.True(t, res.Halted())
	assert.Equal(t, bigs(), res.Stack())
	assert.Equal(t, bigs(15), res.Memory())
}
