/*
Package evm implements a minimal Entropy Virtual Machine.

The evm package implements one EVM, a byte code VM. The BC (Byte Code) VM loops
over a set of bytes and executes them against an operand stack of 256-bit
words and a word-addressed, zero-initialised memory. Execution ends when the
STOP instruction halts the context or when any instruction fails; failures are
never recovered.

Instructions live in a Registry built once with NewRegistry and shared, read
only, by every Interpreter. Each run gets a fresh ExecutionContext.
*/
package evm
