// Command evm runs a single bytecode program and prints the final state.
//
//	evm [flags] 0x6003600401600052
//	evm -asm "PUSH1 3 PUSH1 4 ADD STOP"
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/entropyio/go-evm/common"
	"github.com/entropyio/go-evm/config"
	"github.com/entropyio/go-evm/evm"
	"github.com/entropyio/go-evm/logger"
	"github.com/entropyio/go-evm/runtime"
)

var log = logger.NewLogger("[cmd]")

func main() {
	var (
		stackLimit = flag.Int("stack", 0, "maximum stack depth (default from config)")
		configPath = flag.String("config", "", "TOML file with VM limits")
		asm        = flag.Bool("asm", false, "treat the argument as mnemonic source")
		disasm     = flag.Bool("disasm", false, "print the disassembled code before running")
		trace      = flag.Bool("trace", false, "print an execution trace to stderr")
		traceOut   = flag.String("trace-out", "", "write the execution trace as CBOR to this file")
		steps      = flag.Uint64("steps", 0, "abort after this many instructions (0 = unbounded)")
		level      = flag.String("loglevel", "info", "log level")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: evm [flags] <code>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := logger.SetLevel(*level); err != nil {
		fatalf("invalid log level: %v", err)
	}

	vmcfg := config.DefaultConfig()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		vmcfg = cfg
	}
	if *stackLimit != 0 {
		vmcfg.StackLimit = *stackLimit
	}

	code, err := readCode(flag.Arg(0), *asm)
	if err != nil {
		fatalf("%v", err)
	}

	if *disasm {
		for _, line := range evm.Disassemble(code) {
			fmt.Println(line)
		}
	}

	var tracer *evm.StructLogger
	cfg := &runtime.Config{VMConfig: vmcfg, StepLimit: *steps}
	if *trace || *traceOut != "" {
		tracer = evm.NewStructLogger(nil)
		cfg.Tracer = tracer
	}
	log.Debugf("vm config:\n%s", vmcfg)

	res, runErr := runtime.Execute(code, cfg)
	if tracer != nil {
		if *trace {
			evm.WriteTrace(os.Stderr, tracer.StructLogs())
		}
		if *traceOut != "" {
			if err := writeTrace(*traceOut, tracer.StructLogs()); err != nil {
				log.Errorf("write trace: %v", err)
			}
		}
	}
	if res == nil {
		fatalf("%v", runErr)
	}

	stack := res.Stack()
	fmt.Printf("stack (%d):\n", len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Printf("  %v\n", stack[i])
	}
	fmt.Printf("memory: %d words\n", res.Context.Memory.Len())
	fmt.Printf("halted: %t\n", res.Halted())
	fmt.Printf("steps:  %d\n", res.Steps)
	if runErr != nil {
		fatalf("%v", runErr)
	}
}

func readCode(arg string, asm bool) ([]byte, error) {
	if asm {
		return evm.Assemble(arg)
	}
	code, err := common.ParseHex(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex code %q: %w", strings.TrimSpace(arg), err)
	}
	return code, nil
}

func writeTrace(path string, logs []evm.StructLog) error {
	data, err := evm.EncodeTrace(logs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fatalf(format string, args ...interface{}) {
	log.Errorf(format, args...)
	os.Exit(1)
}
