package evm

import (
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackFunctional(t *testing.T) {
	limit := 3
	vals := []uint64{0, 2, 4}
	s := NewStack(limit)
	for i := 0; i < limit; i++ {
		assert.NoError(t, s.Push(uint256.NewInt(vals[i])))
		assert.Equal(t, i+1, s.Len())
	}

	// overflow
	err := s.Push(uint256.NewInt(9))
	assert.ErrorIs(t, err, ErrStackOverflow)
	assert.Equal(t, limit, s.Len())

	// pop all, last in first out
	for i := limit - 1; i >= 0; i-- {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, vals[i], got.Uint64())
	}

	// underflow
	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)

	// reuse
	assert.NoError(t, s.Push(uint256.NewInt(7)))
	assert.Equal(t, 1, s.Len())
}

func TestStackOverflowContext(t *testing.T) {
	s := NewStack(1)
	require.NoError(t, s.Push(uint256.NewInt(1)))

	var oerr *StackOverflowError
	require.True(t, errors.As(s.Push(uint256.NewInt(2)), &oerr))
	assert.Equal(t, 2, oerr.Len)
	assert.Equal(t, 1, oerr.Limit)
}

func TestStackPushCopies(t *testing.T) {
	s := NewStack(4)
	v := uint256.NewInt(5)
	require.NoError(t, s.Push(v))
	v.SetUint64(6)

	got, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.Uint64())
}

func TestStackPushBig(t *testing.T) {
	maxWord := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	tests := []struct {
		name    string
		value   *big.Int
		wantErr error
	}{
		{name: "zero", value: big.NewInt(0)},
		{name: "max word", value: maxWord},
		{name: "negative", value: big.NewInt(-1), wantErr: ErrInvalidOperand},
		{name: "too large", value: new(big.Int).Add(maxWord, big.NewInt(1)), wantErr: ErrInvalidOperand},
		{name: "nil", value: nil, wantErr: ErrInvalidOperand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack(2)
			err := s.PushBig(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, s.Len())
				return
			}
			require.NoError(t, err)
			got, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, 0, got.ToBig().Cmp(tt.value))
		})
	}
}

func TestStackBack(t *testing.T) {
	s := NewStack(8)
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, s.Push(uint256.NewInt(i)))
	}
	top, err := s.Back(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), top.Uint64())

	bottom, err := s.Back(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bottom.Uint64())

	// Back hands out copies
	bottom.SetUint64(100)
	data := s.Data()
	assert.Equal(t, uint64(1), data[0].Uint64())

	_, err = s.Back(3)
	assert.ErrorIs(t, err, ErrStackUnderflow)
}
