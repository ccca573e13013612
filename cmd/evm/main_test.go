package main

import (
	"path/filepath"
	"testing"

	"github.com/entropyio/go-evm/evm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCode(t *testing.T) {
	code, err := readCode("0x6003600401", false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x03, 0x60, 0x04, 0x01}, code)

	code, err = readCode("PUSH1 3 STOP", true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x03, 0x00}, code)

	_, err = readCode("0xnothex", false)
	assert.Error(t, err)
}

func TestWriteTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.cbor")
	logs := []evm.StructLog{{Pc: 0, Op: evm.STOP, Name: "STOP", Halted: true}}
	require.NoError(t, writeTrace(path, logs))
}
