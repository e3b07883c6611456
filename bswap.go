package num

import (
	"math/bits"
)

// ReverseBytes returns u with all 16 bytes in reverse order. Each 64-bit half
// is reversed and the halves trade places.
//
// ReverseBytes is its own inverse.
func (u U128) ReverseBytes() U128 {
	return U128{
		hi: bits.ReverseBytes64(u.lo),
		lo: bits.ReverseBytes64(u.hi),
	}
}

// ReverseBytes128 is the function form of U128.ReverseBytes, for symmetry
// with math/bits.ReverseBytes64 and friends.
func ReverseBytes128(u U128) U128 { return u.ReverseBytes() }
