package evm

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// WordBytes is the width of a word in bytes.
const WordBytes = 32

// tt256m1 is 2**256 - 1, the largest value a word holds.
var tt256m1 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// MaxWord returns 2**256 - 1.
func MaxWord() *uint256.Int {
	return new(uint256.Int).Not(new(uint256.Int))
}

// ValidWord reports whether v is in [0, 2**256-1].
func ValidWord(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(tt256m1) <= 0
}

// WordFromBig converts v into a word, failing with ErrInvalidOperand when it
// lies outside the word range.
func WordFromBig(v *big.Int) (*uint256.Int, error) {
	if !ValidWord(v) {
		return nil, &InvalidOperandError{Value: copyBig(v)}
	}
	w, _ := uint256.FromBig(v)
	return w, nil
}

// wordToOffset narrows a word used as an address. ok is false when the word
// does not fit a non-negative int64.
func wordToOffset(w *uint256.Int) (int64, bool) {
	v, overflow := w.Uint64WithOverflow()
	if overflow || v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
