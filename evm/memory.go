package evm

import (
	"math/big"

	"github.com/entropyio/go-evm/config"
	"github.com/holiman/uint256"
)

// Memory implements a simple word-addressed memory model for the virtual
// machine. Cells that were never written read as zero; the backing store
// grows lazily on writes only.
type Memory struct {
	store     []uint256.Int
	maxOffset int64
}

// NewMemory returns a new memory model accepting offsets up to maxOffset.
// maxOffset is clamped to config.MaxMemoryLimit-1.
func NewMemory(maxOffset int64) *Memory {
	if maxOffset > config.MaxMemoryLimit-1 {
		maxOffset = config.MaxMemoryLimit - 1
	}
	return &Memory{maxOffset: maxOffset}
}

// Store sets the word at offset to value, zero-filling any gap below it.
func (m *Memory) Store(offset int64, value *uint256.Int) error {
	if offset < 0 || offset > m.maxOffset {
		return &MemoryAccessError{
			Offset: big.NewInt(offset),
			Value:  value.ToBig(),
			Limit:  m.maxOffset,
		}
	}
	if offset >= int64(len(m.store)) {
		m.resize(offset + 1)
	}
	m.store[offset].Set(value)
	return nil
}

// StoreBig validates value as a word before storing it.
func (m *Memory) StoreBig(offset int64, value *big.Int) error {
	if !ValidWord(value) {
		return &MemoryAccessError{
			Offset: big.NewInt(offset),
			Value:  copyBig(value),
			Limit:  m.maxOffset,
		}
	}
	w, _ := uint256.FromBig(value)
	return m.Store(offset, w)
}

// Load returns the word at offset. Reads never grow the memory.
func (m *Memory) Load(offset int64) (uint256.Int, error) {
	if offset < 0 {
		return uint256.Int{}, &MemoryAccessError{Offset: big.NewInt(offset), Limit: m.maxOffset}
	}
	if offset >= int64(len(m.store)) {
		return uint256.Int{}, nil
	}
	return m.store[offset], nil
}

func (m *Memory) resize(size int64) {
	if int64(cap(m.store)) >= size {
		m.store = m.store[:size]
		return
	}
	grown := make([]uint256.Int, size)
	copy(grown, m.store)
	m.store = grown
}

// Len returns the number of allocated words.
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns a copy of the allocated words.
func (m *Memory) Data() []uint256.Int {
	cpy := make([]uint256.Int, len(m.store))
	copy(cpy, m.store)
	return cpy
}
