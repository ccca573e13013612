package evm

import "fmt"

// ExecutionFunc is the behavior of an instruction. It may pop and push the
// stack, read and write memory, consume further code bytes or halt the
// context.
type ExecutionFunc func(ec *ExecutionContext) error

// Instruction is an immutable opcode definition.
type Instruction struct {
	Op   OpCode
	Name string

	execute ExecutionFunc
	// pops and pushes describe the stack effect used for the bound check
	// done before execute. Both are zero for instructions registered
	// through Register, which then rely on Push and Pop alone.
	pops, pushes int
}

// Execute runs the instruction behavior against ec.
func (in *Instruction) Execute(ec *ExecutionContext) error {
	return in.execute(ec)
}

func (in *Instruction) String() string {
	return in.Name
}

// checkStack verifies the stack can take the instruction without leaving it
// half mutated.
func (in *Instruction) checkStack(st *Stack) error {
	sLen := st.Len()
	if sLen < minStack(in.pops, in.pushes) {
		return &StackUnderflowError{Len: sLen, Required: in.pops}
	}
	if sLen > maxStack(st.Limit(), in.pops, in.pushes) {
		return &StackOverflowError{Len: sLen - in.pops + in.pushes, Limit: st.Limit()}
	}
	return nil
}

// Registry maps opcodes to instructions. Registration happens once at start
// up; afterwards a registry is only read and may be shared by any number of
// interpreters.
//
// Registering an opcode twice is an error: the first definition stays and
// Register returns ErrDuplicateOpcode.
type Registry struct {
	table [256]*Instruction
}

// NewRegistry returns a registry with no instructions.
func NewRegistry() *Registry {
	return new(Registry)
}

// Register adds an instruction for op.
func (r *Registry) Register(op OpCode, name string, execute ExecutionFunc) error {
	return r.register(op, name, execute, 0, 0)
}

func (r *Registry) register(op OpCode, name string, execute ExecutionFunc, pops, pushes int) error {
	if execute == nil {
		return fmt.Errorf("register %s: nil execution func", name)
	}
	if prev := r.table[op]; prev != nil {
		return fmt.Errorf("%w: 0x%02x is %s", ErrDuplicateOpcode, byte(op), prev.Name)
	}
	r.table[op] = &Instruction{
		Op:      op,
		Name:    name,
		execute: execute,
		pops:    pops,
		pushes:  pushes,
	}
	return nil
}

// Lookup returns the instruction registered for op.
func (r *Registry) Lookup(op OpCode) (*Instruction, error) {
	if in := r.table[op]; in != nil {
		return in, nil
	}
	return nil, &UnknownOpcodeError{Op: op}
}

// Instructions lists the registered instructions in opcode order.
func (r *Registry) Instructions() []*Instruction {
	var list []*Instruction
	for _, in := range r.table {
		if in != nil {
			list = append(list, in)
		}
	}
	return list
}

type instructionDef struct {
	op           OpCode
	execute      ExecutionFunc
	pops, pushes int
}

// NewStandardRegistry returns a registry holding every instruction this
// machine knows about.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, def := range standardInstructions() {
		if err := r.register(def.op, def.op.String(), def.execute, def.pops, def.pushes); err != nil {
			panic(err)
		}
	}
	return r
}

func standardInstructions() []instructionDef {
	defs := []instructionDef{
		{op: STOP, execute: opStop},
		{op: ADD, execute: opAdd, pops: 2, pushes: 1},
		{op: MUL, execute: opMul, pops: 2, pushes: 1},
		{op: SUB, execute: opSub, pops: 2, pushes: 1},
		{op: DIV, execute: opDiv, pops: 2, pushes: 1},
		{op: MOD, execute: opMod, pops: 2, pushes: 1},
		{op: EXP, execute: opExp, pops: 2, pushes: 1},

		{op: LT, execute: opLt, pops: 2, pushes: 1},
		{op: GT, execute: opGt, pops: 2, pushes: 1},
		{op: EQ, execute: opEq, pops: 2, pushes: 1},
		{op: ISZERO, execute: opIszero, pops: 1, pushes: 1},
		{op: AND, execute: opAnd, pops: 2, pushes: 1},
		{op: OR, execute: opOr, pops: 2, pushes: 1},
		{op: XOR, execute: opXor, pops: 2, pushes: 1},
		{op: NOT, execute: opNot, pops: 1, pushes: 1},

		{op: POP, execute: opPop, pops: 1},
		{op: MLOAD, execute: opMload, pops: 1, pushes: 1},
		{op: MSTORE, execute: opMstore, pops: 2},
		{op: JUMP, execute: opJump, pops: 1},
		{op: JUMPI, execute: opJumpi, pops: 2},
		{op: PC, execute: opPc, pushes: 1},
		{op: MSIZE, execute: opMsize, pushes: 1},
		{op: JUMPDEST, execute: opJumpdest},
	}
	for i := 1; i <= 32; i++ {
		defs = append(defs, instructionDef{op: PUSH1 + OpCode(i-1), execute: makePush(uint64(i)), pushes: 1})
	}
	for i := 1; i <= 16; i++ {
		pops, pushes := dupStack(i)
		defs = append(defs, instructionDef{op: DUP1 + OpCode(i-1), execute: makeDup(i), pops: pops, pushes: pushes})
	}
	for i := 1; i <= 16; i++ {
		pops, pushes := swapStack(i)
		defs = append(defs, instructionDef{op: SWAP1 + OpCode(i-1), execute: makeSwap(i), pops: pops, pushes: pushes})
	}
	return defs
}
