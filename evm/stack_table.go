package evm

// Stack requirements are expressed as the number of items an instruction
// pops and pushes. The interpreter derives the allowed stack length range
// from them before running the instruction.

func swapStack(n int) (pops, pushes int) {
	return n + 1, n + 1
}

func dupStack(n int) (pops, pushes int) {
	return n, n + 1
}

func maxStack(limit, pops, pushes int) int {
	return limit + pops - pushes
}
func minStack(pops, _ int) int {
	return pops
}
