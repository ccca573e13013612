// Package logger sets up the go-logging backend shared by every package of
// the virtual machine and hands out per-module loggers.
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

const (
	plainFormat = `%{time:15:04:05.000} %{module} %{level:.4s} %{message}`
	colorFormat = `%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`
)

var (
	once    sync.Once
	backend logging.LeveledBackend
)

func setup() {
	format := plainFormat
	if isTerminal(os.Stderr.Fd()) {
		format = colorFormat
	}
	out := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(out, logging.MustStringFormatter(format))
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}

// NewLogger returns the logger for the given module, e.g. "[evm]".
func NewLogger(module string) *logging.Logger {
	once.Do(setup)
	return logging.MustGetLogger(module)
}

// SetLevel changes the level of every module. Accepted names are those of
// go-logging: DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL.
func SetLevel(level string) error {
	once.Do(setup)
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return err
	}
	backend.SetLevel(lvl, "")
	return nil
}

// IsDebug reports whether DEBUG records of module would be emitted.
func IsDebug(module string) bool {
	once.Do(setup)
	return backend.IsEnabledFor(logging.DEBUG, module)
}
