package evm

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Stack is the bounded operand stack of the virtual machine. Push and Pop
// are its only mutators.
type Stack struct {
	data  []uint256.Int
	limit int
}

// NewStack returns an empty stack holding at most limit words.
func NewStack(limit int) *Stack {
	return &Stack{data: make([]uint256.Int, 0, 16), limit: limit}
}

// Push places a copy of d on top of the stack.
func (st *Stack) Push(d *uint256.Int) error {
	if len(st.data) >= st.limit {
		return &StackOverflowError{Len: len(st.data) + 1, Limit: st.limit}
	}
	st.data = append(st.data, *d)
	return nil
}

// PushBig validates v as a word before pushing it.
func (st *Stack) PushBig(v *big.Int) error {
	w, err := WordFromBig(v)
	if err != nil {
		return err
	}
	return st.Push(w)
}

// Pop removes and returns the top of the stack.
func (st *Stack) Pop() (uint256.Int, error) {
	if len(st.data) == 0 {
		return uint256.Int{}, &StackUnderflowError{Len: 0, Required: 1}
	}
	ret := st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return ret, nil
}

// Back returns the n'th item counted from the top without removing it.
func (st *Stack) Back(n int) (*uint256.Int, error) {
	if n < 0 || n >= len(st.data) {
		return nil, &StackUnderflowError{Len: len(st.data), Required: n + 1}
	}
	return new(uint256.Int).Set(&st.data[len(st.data)-n-1]), nil
}

// Len returns the number of items on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Limit returns the maximum depth.
func (st *Stack) Limit() int {
	return st.limit
}

// Data returns a copy of the stack, bottom first.
func (st *Stack) Data() []uint256.Int {
	cpy := make([]uint256.Int, len(st.data))
	copy(cpy, st.data)
	return cpy
}
