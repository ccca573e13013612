package runtime

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/entropyio/go-evm/common"
	"github.com/entropyio/go-evm/common/crypto"
	"github.com/entropyio/go-evm/config"
	"github.com/entropyio/go-evm/evm"
	"github.com/entropyio/go-evm/logger"
	"github.com/google/uuid"
)

var log = logger.NewLogger("[runtime]")

// ErrStepLimitReached is returned when a run executes Config.StepLimit
// instructions without halting.
var ErrStepLimitReached = errors.New("step limit reached")

// Config is a basic type specifying certain configuration flags for running
// the EVM.
type Config struct {
	VMConfig *config.Config
	Registry *evm.Registry
	Tracer   evm.Tracer
	Debug    bool

	// StepLimit bounds the number of executed instructions, zero means no
	// bound. Limiting runs is the caller's policy, the machine itself
	// imposes none.
	StepLimit uint64
}

// sets defaults on the config
func setDefaults(cfg *Config) {
	if cfg.VMConfig == nil {
		cfg.VMConfig = config.DefaultConfig()
	}
	if cfg.Registry == nil {
		cfg.Registry = evm.NewStandardRegistry()
	}
}

// Result describes a finished run. Context is the final execution state and
// is the authoritative outcome; the remaining fields are bookkeeping.
type Result struct {
	ID       uuid.UUID
	CodeHash common.Hash
	Steps    uint64
	Context  *evm.ExecutionContext
}

// Halted reports whether the run ended with STOP.
func (r *Result) Halted() bool {
	return r.Context.Halted()
}

// Stack returns the final stack, bottom first.
func (r *Result) Stack() []*big.Int {
	data := r.Context.Stack.Data()
	out := make([]*big.Int, len(data))
	for i := range data {
		out[i] = data[i].ToBig()
	}
	return out
}

// Memory returns the final allocated memory words.
func (r *Result) Memory() []*big.Int {
	data := r.Context.Memory.Data()
	out := make([]*big.Int, len(data))
	for i := range data {
		out[i] = data[i].ToBig()
	}
	return out
}

// Execute runs code in a fresh execution context.
//
// The result is returned even when execution fails so the caller can inspect
// the state the machine stopped in.
func Execute(code []byte, cfg *Config) (*Result, error) {
	return ExecuteContext(context.Background(), code, cfg)
}

// ExecuteContext is Execute with a context whose cancellation or deadline
// ends the run between two instructions.
func ExecuteContext(ctx context.Context, code []byte, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)
	if err := cfg.VMConfig.Validate(); err != nil {
		return nil, err
	}

	var (
		vmenv = NewEnv(cfg)
		ec    = evm.NewExecutionContext(code, cfg.VMConfig)
		res   = &Result{
			ID:       uuid.New(),
			CodeHash: crypto.Keccak256Hash(code),
			Context:  ec,
		}
	)
	if logger.IsDebug("[runtime]") {
		log.Debugf("execute id:%s, code hash:%s, code:%x", res.ID, res.CodeHash, code)
	}

	steps, err := vmenv.RunChecked(ec, stepCheck(ctx, cfg.StepLimit))
	res.Steps = steps
	if err != nil {
		log.Warningf("execute id:%s failed after %d steps: %v", res.ID, res.Steps, err)
		return res, err
	}
	log.Debugf("execute id:%s halted after %d steps, stack depth %d", res.ID, res.Steps, ec.Stack.Len())
	return res, nil
}

// stepCheck turns the caller's step limit and ctx into a check run before
// every instruction. It returns nil when neither bounds the run.
func stepCheck(ctx context.Context, limit uint64) evm.StepCheck {
	done := ctx.Done()
	if limit == 0 && done == nil {
		return nil
	}
	return func(ec *evm.ExecutionContext, steps uint64) error {
		if limit != 0 && steps >= limit {
			return fmt.Errorf("%w: %d", ErrStepLimitReached, limit)
		}
		if done != nil {
			select {
			case <-done:
				return fmt.Errorf("execution interrupted at pc=%d: %w", ec.PC, ctx.Err())
			default:
			}
		}
		return nil
	}
}
