package iseven

import "math/big"

// Labels printed for each parity.
const (
	EvenLabel = "Even"
	OddLabel  = "Odd"
)

// IsEven reports whether the least significant bit of num is clear. Two's
// complement keeps bit 0 the same for n and -n, so negatives need no special
// casing.
func IsEven(num int64) bool {
	return num&1 == 0
}

// IsEvenBig is IsEven for integers of any width. big.Int stores a sign and a
// magnitude, so bit 0 is read from the magnitude. A nil num counts as zero.
func IsEvenBig(num *big.Int) bool {
	if num == nil {
		return true
	}
	return num.Bit(0) == 0
}

// Label returns EvenLabel when even is true and OddLabel otherwise.
func Label(even bool) string {
	if even {
		return EvenLabel
	}
	return OddLabel
}
