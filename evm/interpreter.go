package evm

import (
	"github.com/entropyio/go-evm/logger"
)

var log = logger.NewLogger("[evm]")

// Interpreter decodes and dispatches instructions against an execution
// context. It holds no run state of its own, so one interpreter can serve
// any number of consecutive runs.
type Interpreter struct {
	registry *Registry
	tracer   Tracer
}

// NewInterpreter returns an interpreter dispatching through registry. tracer
// may be nil.
func NewInterpreter(registry *Registry, tracer Tracer) *Interpreter {
	return &Interpreter{registry: registry, tracer: tracer}
}

// Step fetches, decodes and executes a single instruction. Every failure is
// returned as an *ExecutionError.
func (in *Interpreter) Step(ec *ExecutionContext) error {
	pc := ec.PC
	if pc >= uint64(len(ec.Code)) {
		err := &ExecutionError{PC: pc, Err: &CodeOffsetError{PC: pc, CodeLen: len(ec.Code)}}
		in.capture(pc, STOP, "", ec, err)
		return err
	}
	op := OpCode(ec.ReadCode(1).Uint64())

	instr, err := in.registry.Lookup(op)
	if err != nil {
		err = &ExecutionError{PC: pc, Op: op, Err: err}
		in.capture(pc, op, "", ec, err)
		return err
	}
	if err := instr.checkStack(ec.Stack); err != nil {
		err = &ExecutionError{PC: pc, Op: op, Err: err}
		in.capture(pc, op, instr.Name, ec, err)
		return err
	}
	if err := instr.Execute(ec); err != nil {
		err = &ExecutionError{PC: pc, Op: op, Err: err}
		in.capture(pc, op, instr.Name, ec, err)
		return err
	}
	in.capture(pc, op, instr.Name, ec, nil)
	return nil
}

// StepCheck is consulted before every step with the number of instructions
// completed so far. A non-nil error ends the run with that error.
type StepCheck func(ec *ExecutionContext, steps uint64) error

// Run executes instructions until the context halts or a step fails.
func (in *Interpreter) Run(ec *ExecutionContext) error {
	_, err := in.RunChecked(ec, nil)
	return err
}

// RunChecked is Run with a check in front of every step. It returns the
// number of instructions that completed.
func (in *Interpreter) RunChecked(ec *ExecutionContext, check StepCheck) (uint64, error) {
	var steps uint64
	for !ec.Halted() {
		if check != nil {
			if err := check(ec, steps); err != nil {
				log.Debugf("execution stopped after %d steps: %v", steps, err)
				return steps, err
			}
		}
		if err := in.Step(ec); err != nil {
			log.Debugf("execution failed: %v", err)
			return steps, err
		}
		steps++
	}
	return steps, nil
}

func (in *Interpreter) capture(pc uint64, op OpCode, name string, ec *ExecutionContext, err error) {
	if in.tracer != nil {
		in.tracer.CaptureState(pc, op, name, ec, err)
	}
}
