package extgcd

import "math/big"

// GCD returns the greatest common divisor of a and b. The result is always
// non-negative.
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtGCD(a, b)
	return g
}

// ExtGCD returns the greatest common divisor of a and b along with the
// Bézout coefficients x and y, such that:
//
//	g == a*x + b*y == gcd(a, b)
//
// g is always non-negative. The coefficient pair is valid but not canonical;
// other pairs satisfying the identity exist for almost all inputs.
//
// a and b are not modified; g, x and y are freshly allocated.
func ExtGCD(a, b *big.Int) (g, x, y *big.Int) {
	// The zero cases keep zero operands out of the trailing-zero count in
	// FactorTwos, where the notion is undefined.
	if a.Sign() == 0 {
		y = big.NewInt(1)
		if b.Sign() < 0 {
			y.SetInt64(-1)
		}
		return new(big.Int).Abs(b), new(big.Int), y
	}
	if b.Sign() == 0 {
		x = big.NewInt(1)
		if a.Sign() < 0 {
			x.SetInt64(-1)
		}
		return new(big.Int).Abs(a), x, new(big.Int)
	}

	// The reduction assumes non-negative working values, so it runs on the
	// magnitudes. g == x*|a| + y*|b| becomes g == (±x)*a + (±y)*b.
	sa, sb := a.Sign(), b.Sign()

	shift, ua, ub := FactorTwos(new(big.Int).Abs(a), new(big.Int).Abs(b))

	st := newState(ua, ub)
	g, x, y = st.reduce()
	g.Lsh(g, shift)

	if sa < 0 {
		x.Neg(x)
	}
	if sb < 0 {
		y.Neg(y)
	}
	return g, x, y
}

// state carries the binary extended GCD reduction. a and b are fixed for the
// life of the reduction; the other six values evolve together under the
// invariants:
//
//	u == aa*a + bb*b
//	v == cc*a + dd*b
//
// Both hold on entry to and exit from every step below.
type state struct {
	u, v   *big.Int // working pair, driven toward u == 0
	a, b   *big.Int // post-extraction inputs, at least one odd
	aa, bb *big.Int // coefficients of u
	cc, dd *big.Int // coefficients of v
}

func newState(a, b *big.Int) *state {
	return &state{
		u:  new(big.Int).Set(a),
		v:  new(big.Int).Set(b),
		a:  a,
		b:  b,
		aa: big.NewInt(1),
		bb: new(big.Int),
		cc: new(big.Int),
		dd: big.NewInt(1),
	}
}

// reduce runs the shift-and-subtract loop to the fixed point u == 0, at
// which v == gcd(a, b) with coefficients (cc, dd).
//
// Each pass first normalises u and then v to odd, then subtracts the smaller
// from the larger. After an odd-odd subtraction the changed value is even,
// so the next pass halves it at least once: max(u, v) shrinks by at least a
// factor of two every two passes and the loop is O(log max(a, b)).
func (s *state) reduce() (g, x, y *big.Int) {
	for s.u.Sign() != 0 {
		for s.u.Bit(0) == 0 {
			s.halve(s.u, s.aa, s.bb)
		}
		for s.v.Bit(0) == 0 {
			s.halve(s.v, s.cc, s.dd)
		}
		if s.u.Cmp(s.v) >= 0 {
			s.u.Sub(s.u, s.v)
			s.aa.Sub(s.aa, s.cc)
			s.bb.Sub(s.bb, s.dd)
		} else {
			s.v.Sub(s.v, s.u)
			s.cc.Sub(s.cc, s.aa)
			s.dd.Sub(s.dd, s.bb)
		}
	}
	return s.v, s.cc, s.dd
}

// halve divides the even working value w by two while keeping
// w == p*a + q*b intact. When p and q are both even the pair halves
// directly. Otherwise (p+b, q-a) is substituted first: it leaves p*a + q*b
// unchanged, and both components are guaranteed even — a and b are not both
// even after factor extraction, and w even forces p+b and q-a even in every
// remaining parity combination of a, b, p, q.
func (s *state) halve(w, p, q *big.Int) {
	w.Rsh(w, 1)
	if p.Bit(0) == 0 && q.Bit(0) == 0 {
		p.Rsh(p, 1)
		q.Rsh(q, 1)
		return
	}
	p.Add(p, s.b)
	p.Rsh(p, 1)
	q.Sub(q, s.a)
	q.Rsh(q, 1)
}
