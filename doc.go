/*
Package extgcd computes the greatest common divisor of two arbitrary
precision integers together with the Bézout coefficients, using the binary
(shift-and-subtract) form of the extended Euclidean algorithm.

For inputs a and b, ExtGCD returns g, x, y such that:

	g == gcd(a, b)
	g == a*x + b*y

The reduction uses only shifts, comparisons and subtraction; it performs no
division at any point, which makes it cheaper than the classic
quotient-based algorithm on multi-word operands.

Simple example:

	g, x, y := extgcd.ExtGCD(big.NewInt(48), big.NewInt(18))
	fmt.Println(g, x, y)
	// Output: 6 -4 11

The returned gcd is always non-negative. Negative inputs are normalised at
the boundary: the reduction runs on the absolute values and the signs are
folded back into the coefficients, so the identity above holds exactly for
any mix of signs.

Bézout coefficients are not unique. Callers must rely on the identity, not
on the particular pair returned; the pair may differ from the one produced
by big.Int.GCD or by GMP.

Zero is handled by convention:

	ExtGCD(0, b) == (|b|, 0, sign(b))
	ExtGCD(a, 0) == (|a|, sign(a), 0)
	ExtGCD(0, 0) == (0, 0, 1)

All results are freshly allocated and the inputs are never modified, so
values may be shared freely between concurrent callers.
*/
package extgcd
