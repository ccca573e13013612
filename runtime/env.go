package runtime

import (
	"github.com/entropyio/go-evm/evm"
)

// NewEnv returns the interpreter described by cfg. cfg must have had its
// defaults applied.
func NewEnv(cfg *Config) *evm.Interpreter {
	tracer := cfg.Tracer
	if tracer == nil && cfg.Debug {
		tracer = evm.LogTracer{}
	}
	return evm.NewInterpreter(cfg.Registry, tracer)
}
