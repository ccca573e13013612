package evm

import (
	"github.com/holiman/uint256"
)

// The first value popped is the left operand: for SUB the machine computes
// top - second.
func binaryOp(fn func(z, x, y *uint256.Int) *uint256.Int) ExecutionFunc {
	return func(ec *ExecutionContext) error {
		x, err := ec.Stack.Pop()
		if err != nil {
			return err
		}
		y, err := ec.Stack.Pop()
		if err != nil {
			return err
		}
		return ec.Stack.Push(fn(new(uint256.Int), &x, &y))
	}
}

func compareOp(cmp func(x, y *uint256.Int) bool) ExecutionFunc {
	return binaryOp(func(z, x, y *uint256.Int) *uint256.Int {
		if cmp(x, y) {
			return z.SetOne()
		}
		return z.Clear()
	})
}

var (
	opAdd = binaryOp((*uint256.Int).Add)
	opMul = binaryOp((*uint256.Int).Mul)
	opSub = binaryOp((*uint256.Int).Sub)
	// Div and Mod by zero yield zero.
	opDiv = binaryOp((*uint256.Int).Div)
	opMod = binaryOp((*uint256.Int).Mod)
	opExp = binaryOp((*uint256.Int).Exp)

	opLt  = compareOp((*uint256.Int).Lt)
	opGt  = compareOp((*uint256.Int).Gt)
	opEq  = compareOp((*uint256.Int).Eq)
	opAnd = binaryOp((*uint256.Int).And)
	opOr  = binaryOp((*uint256.Int).Or)
	opXor = binaryOp((*uint256.Int).Xor)
)

func opStop(ec *ExecutionContext) error {
	ec.Stop()
	return nil
}

func opIszero(ec *ExecutionContext) error {
	x, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return ec.Stack.Push(&x)
}

func opNot(ec *ExecutionContext) error {
	x, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	return ec.Stack.Push(x.Not(&x))
}

func opPop(ec *ExecutionContext) error {
	_, err := ec.Stack.Pop()
	return err
}

func memoryOffset(ec *ExecutionContext, w *uint256.Int) (int64, error) {
	offset, ok := wordToOffset(w)
	if !ok {
		return 0, &MemoryAccessError{Offset: w.ToBig(), Limit: ec.Memory.maxOffset}
	}
	return offset, nil
}

func opMload(ec *ExecutionContext) error {
	w, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	offset, err := memoryOffset(ec, &w)
	if err != nil {
		return err
	}
	v, err := ec.Memory.Load(offset)
	if err != nil {
		return err
	}
	return ec.Stack.Push(&v)
}

func opMstore(ec *ExecutionContext) error {
	w, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	val, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	offset, err := memoryOffset(ec, &w)
	if err != nil {
		return err
	}
	return ec.Memory.Store(offset, &val)
}

func opJump(ec *ExecutionContext) error {
	dest, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	if !ec.validJumpdest(&dest) {
		return &InvalidJumpError{Dest: dest.ToBig()}
	}
	ec.PC = dest.Uint64()
	return nil
}

func opJumpi(ec *ExecutionContext) error {
	dest, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	cond, err := ec.Stack.Pop()
	if err != nil {
		return err
	}
	if cond.IsZero() {
		return nil
	}
	if !ec.validJumpdest(&dest) {
		return &InvalidJumpError{Dest: dest.ToBig()}
	}
	ec.PC = dest.Uint64()
	return nil
}

// opPc pushes the location of the PC instruction itself; the fetch has
// already moved past it.
func opPc(ec *ExecutionContext) error {
	return ec.Stack.Push(new(uint256.Int).SetUint64(ec.PC - 1))
}

func opMsize(ec *ExecutionContext) error {
	return ec.Stack.Push(new(uint256.Int).SetUint64(uint64(ec.Memory.Len())))
}

func opJumpdest(ec *ExecutionContext) error {
	return nil
}

// makePush creates a PUSHn behavior reading n immediate bytes.
func makePush(n uint64) ExecutionFunc {
	return func(ec *ExecutionContext) error {
		return ec.Stack.Push(ec.ReadCode(n))
	}
}

// makeDup creates a DUPn behavior copying the n'th item onto the top.
func makeDup(n int) ExecutionFunc {
	return func(ec *ExecutionContext) error {
		v, err := ec.Stack.Back(n - 1)
		if err != nil {
			return err
		}
		return ec.Stack.Push(v)
	}
}

// makeSwap creates a SWAPn behavior exchanging the top with the (n+1)'th
// item. It is built from pops and pushes only.
func makeSwap(n int) ExecutionFunc {
	return func(ec *ExecutionContext) error {
		items := make([]uint256.Int, n+1)
		for i := range items {
			v, err := ec.Stack.Pop()
			if err != nil {
				return err
			}
			items[i] = v
		}
		items[0], items[n] = items[n], items[0]
		for i := n; i >= 0; i-- {
			if err := ec.Stack.Push(&items[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
