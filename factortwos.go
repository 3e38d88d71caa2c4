package extgcd

import "math/big"

// FactorTwos strips the largest power of two dividing both a and b. It
// returns shift, a2, b2 such that:
//
//	a == a2 << shift
//	b == b2 << shift
//
// and at least one of a2, b2 is odd, unless the corresponding input (or
// both) is zero. A zero operand places no bound on shift, so the other
// operand's trailing-zero count decides it alone; FactorTwos(0, 0) is
// (0, 0, 0).
//
// a and b are not modified; a2 and b2 are freshly allocated.
func FactorTwos(a, b *big.Int) (shift uint, a2, b2 *big.Int) {
	a2 = new(big.Int).Set(a)
	b2 = new(big.Int).Set(b)

	switch {
	case a2.Sign() == 0 && b2.Sign() == 0:
		return 0, a2, b2
	case a2.Sign() == 0:
		shift = b2.TrailingZeroBits()
	case b2.Sign() == 0:
		shift = a2.TrailingZeroBits()
	default:
		shift = a2.TrailingZeroBits()
		if tb := b2.TrailingZeroBits(); tb < shift {
			shift = tb
		}
	}

	// Exact for negative values too: 2^shift divides the magnitude, so the
	// floor taken by Rsh never rounds.
	a2.Rsh(a2, shift)
	b2.Rsh(b2, shift)
	return shift, a2, b2
}
