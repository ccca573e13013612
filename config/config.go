package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
)

const (
	StackLimit  = 1024    // Maximum size of VM stack allowed.
	MemoryLimit = 1 << 20 // Number of addressable memory words.
	WordSize    = 32      // Size of a memory word in bytes.

	MaxMemoryLimit = 1 << 26 // Largest MemoryLimit accepted, 2 GiB of words.
)

var (
	errStackLimit  = errors.New("stack limit must be positive")
	errMemoryLimit = errors.New("memory limit must be positive")
	errMemoryCap   = errors.New("memory limit too large")
)

// Config holds the tunables of a single virtual machine run.
//
// Only StackLimit is meant to be changed by ordinary callers; MemoryLimit
// bounds the highest addressable memory word and exists so that hosts can
// cap the backing allocation.
type Config struct {
	StackLimit  int   `json:"stackLimit" toml:"stack_limit"`
	MemoryLimit int64 `json:"memoryLimit" toml:"memory_limit"`
}

// DefaultConfig returns a freshly allocated configuration with the default
// limits. Each call returns a new value so runs never share it by accident.
func DefaultConfig() *Config {
	return &Config{
		StackLimit:  StackLimit,
		MemoryLimit: MemoryLimit,
	}
}

// Load reads a TOML file and applies it on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every limit is usable.
func (c *Config) Validate() error {
	if c.StackLimit <= 0 {
		return fmt.Errorf("%w: %d", errStackLimit, c.StackLimit)
	}
	if c.MemoryLimit <= 0 {
		return fmt.Errorf("%w: %d", errMemoryLimit, c.MemoryLimit)
	}
	if c.MemoryLimit > MaxMemoryLimit {
		return fmt.Errorf("%w: %d > %d", errMemoryCap, c.MemoryLimit, MaxMemoryLimit)
	}
	return nil
}

// MaxMemoryOffset is the highest word offset memory accepts.
func (c *Config) MaxMemoryOffset() int64 {
	return c.MemoryLimit - 1
}

// String implements the fmt.Stringer interface.
func (c *Config) String() string {
	var banner string
	banner += fmt.Sprintf("Stack limit:  %d words\n", c.StackLimit)
	banner += fmt.Sprintf("Memory limit: %d words (%s)\n", c.MemoryLimit,
		humanize.IBytes(uint64(c.MemoryLimit)*WordSize))
	return banner
}
