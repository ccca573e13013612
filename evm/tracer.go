package evm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"
)

// Tracer receives the state of the context after every step. name is empty
// when no instruction was resolved (bad program counter or unknown opcode).
// Tracing never influences execution.
type Tracer interface {
	CaptureState(pc uint64, op OpCode, name string, ec *ExecutionContext, err error)
}

// StructLog is emitted to the trace on each step.
type StructLog struct {
	Pc     uint64   `json:"pc" cbor:"1,keyasint"`
	Op     OpCode   `json:"op" cbor:"2,keyasint"`
	Name   string   `json:"name" cbor:"3,keyasint"`
	Stack  []string `json:"stack,omitempty" cbor:"4,keyasint,omitempty"`
	Memory []string `json:"memory,omitempty" cbor:"5,keyasint,omitempty"`
	Halted bool     `json:"halted" cbor:"6,keyasint"`
	Err    string   `json:"error,omitempty" cbor:"7,keyasint,omitempty"`
}

// LogConfig are the configuration options for structured logger.
type LogConfig struct {
	DisableMemory bool // disable memory capture
	DisableStack  bool // disable stack capture
	Limit         int  // maximum number of records captured, zero for unlimited
}

// StructLogger collects an ordered sequence of step records.
type StructLogger struct {
	cfg  LogConfig
	logs []StructLog
}

// NewStructLogger returns a new logger
func NewStructLogger(cfg *LogConfig) *StructLogger {
	logger := new(StructLogger)
	if cfg != nil {
		logger.cfg = *cfg
	}
	return logger
}

// CaptureState records a snapshot of ec.
func (l *StructLogger) CaptureState(pc uint64, op OpCode, name string, ec *ExecutionContext, err error) {
	if l.cfg.Limit != 0 && l.cfg.Limit <= len(l.logs) {
		return
	}
	rec := StructLog{Pc: pc, Op: op, Name: name, Halted: ec.Halted()}
	if !l.cfg.DisableStack {
		rec.Stack = formatWords(ec.Stack.Data())
	}
	if !l.cfg.DisableMemory {
		rec.Memory = formatWords(ec.Memory.Data())
	}
	if err != nil {
		rec.Err = err.Error()
	}
	l.logs = append(l.logs, rec)
}

// StructLogs returns the captured log entries.
func (l *StructLogger) StructLogs() []StructLog { return l.logs }

// Reset drops every captured entry.
func (l *StructLogger) Reset() { l.logs = nil }

func formatWords(words []uint256.Int) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	for i := range words {
		out[i] = words[i].ToBig().String()
	}
	return out
}

// noOpLabel names trace steps where the program counter ran past the code
// and no opcode was fetched.
const noOpLabel = "-"

// LogTracer writes one DEBUG record per step to the evm logger.
type LogTracer struct{}

// CaptureState logs the step at pc, with the error when it failed.
func (LogTracer) CaptureState(pc uint64, op OpCode, name string, ec *ExecutionContext, err error) {
	if err != nil {
		label := op.String()
		if name == "" && errors.Is(err, ErrInvalidCodeOffset) {
			label = noOpLabel
		}
		log.Debugf("%-8s pc=%d err=%v", label, pc, err)
		return
	}
	log.Debugf("%-8s pc=%d stack=%v msize=%d halted=%t",
		name, pc, formatWords(ec.Stack.Data()), ec.Memory.Len(), ec.Halted())
}

// WriteTrace writes a formatted trace to the given writer
func WriteTrace(writer io.Writer, logs []StructLog) {
	for _, log := range logs {
		name := log.Name
		switch {
		case name != "":
		case strings.Contains(log.Err, ErrInvalidCodeOffset.Error()):
			name = noOpLabel
		default:
			name = log.Op.String()
		}
		fmt.Fprintf(writer, "%-16s pc=%08d", name, log.Pc)
		if log.Err != "" {
			fmt.Fprintf(writer, " ERROR: %v", log.Err)
		}
		fmt.Fprintln(writer)

		if len(log.Stack) > 0 {
			fmt.Fprintln(writer, "Stack:")
			for i := len(log.Stack) - 1; i >= 0; i-- {
				fmt.Fprintf(writer, "%08d  %s\n", len(log.Stack)-i-1, log.Stack[i])
			}
		}
		if len(log.Memory) > 0 {
			fmt.Fprintln(writer, "Memory:")
			for i, w := range log.Memory {
				fmt.Fprintf(writer, "%08d  %s\n", i, w)
			}
		}
		fmt.Fprintln(writer)
	}
}

// EncodeTrace serialises trace records as CBOR.
func EncodeTrace(logs []StructLog) ([]byte, error) {
	return cbor.Marshal(logs)
}

// DecodeTrace parses records produced by EncodeTrace.
func DecodeTrace(data []byte) ([]StructLog, error) {
	var logs []StructLog
	if err := cbor.Unmarshal(data, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
