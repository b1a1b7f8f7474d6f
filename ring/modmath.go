package ring

import "math/bits"

// AddMod returns (x+y) mod q. x and y must already be < q; since q < 2^62,
// x+y cannot overflow uint64.
func AddMod(x, y, q uint64) uint64 {
	r := x + y
	if r >= q {
		r -= q
	}
	return r
}

// SubMod returns (x-y) mod q. x and y must already be < q.
func SubMod(x, y, q uint64) uint64 {
	r := x + q - y
	if r >= q {
		r -= q
	}
	return r
}

// BarrettReduce64 returns x mod q given qBarr = BarrettConstant64(q) =
// floor(2^64/q). Single conditional subtract.
func BarrettReduce64(x, q, qBarr uint64) uint64 {
	s0 := MulHi64(x, qBarr)
	r := x - s0*q
	if r >= q {
		r -= q
	}
	return r
}

// MultiplyMod returns (x*y) mod q: the full 128-bit product is reduced with
// the 128-bit Barrett constant floor(2^128/q) (see barrettReduceWide).
func MultiplyMod(x, y, q uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	qBarrettHi, qBarrettLo := barrettReduceParams(q)
	return barrettReduceWide(hi, lo, q, qBarrettHi, qBarrettLo)
}

// barrettReduceWide reduces the full 128-bit product (hi:lo) mod q using the
// precomputed floor(2^128/q) pair.
func barrettReduceWide(hi, lo, q, qBarrettHi, qBarrettLo uint64) uint64 {
	// Estimate quotient m = floor((hi:lo) * floor(2^128/q) / 2^128) using the
	// three cross terms that matter at this width; low-order contributions
	// beyond 2^128 are dropped deliberately (Barrett's estimate is exact up
	// to a bounded error corrected by the trailing conditional subtracts).
	lhi, _ := bits.Mul64(lo, qBarrettLo)

	mhi1, mlo1 := bits.Mul64(lo, qBarrettHi)
	s0, carry := bits.Add64(mlo1, lhi, 0)
	s1 := mhi1 + carry

	mhi2, mlo2 := bits.Mul64(hi, qBarrettLo)
	_, carry = bits.Add64(mlo2, s0, 0)
	lhi2 := mhi2 + carry

	m := hi*qBarrettHi + s1 + lhi2

	r := lo - m*q
	if r >= q {
		r -= q
	}
	return r
}

// MultiplyModPrecon returns (x*y) mod q using a precomputed Barrett factor
// for y at shift 64 (yPrecon = floor((y<<64)/q)). Computes Q = hi64(x *
// yPrecon) then x*y - Q*q, followed by one conditional subtract.
func MultiplyModPrecon(x, y, yPrecon, q uint64) uint64 {
	Q := MulHi64(x, yPrecon)
	r := x*y - Q*q
	if r >= q {
		r -= q
	}
	return r
}

// PowMod returns base^exp mod q via square-and-multiply using MultiplyMod.
func PowMod(base, exp, q uint64) uint64 {
	result := uint64(1) % q
	base %= q
	for exp > 0 {
		if exp&1 == 1 {
			result = MultiplyMod(result, base, q)
		}
		base = MultiplyMod(base, base, q)
		exp >>= 1
	}
	return result
}

// InverseMod returns x^-1 mod q via the extended Euclidean algorithm. Returns
// ErrNoInverse if gcd(x, q) != 1.
func InverseMod(x, q uint64) (uint64, error) {
	if q == 0 {
		return 0, ErrInvalidArguments
	}

	a, b := int64(x%q), int64(q)
	oldR, r := a, b
	oldS, s := int64(1), int64(0)

	for r != 0 {
		quotient := oldR / r
		oldR, r = r, oldR-quotient*r
		oldS, s = s, oldS-quotient*s
	}

	if oldR != 1 {
		return 0, ErrNoInverse
	}

	inv := oldS % int64(q)
	if inv < 0 {
		inv += int64(q)
	}
	return uint64(inv), nil
}

// ReduceMod1 returns x mod q assuming x < q: the identity reduction.
func ReduceMod1(x, q uint64) uint64 {
	assertRange("ReduceMod1.input", x, q)
	return x
}

// ReduceMod2 returns x mod q assuming x < 2q via one conditional subtract.
func ReduceMod2(x, q uint64) uint64 {
	assertRange("ReduceMod2.input", x, 2*q)
	if x >= q {
		x -= q
	}
	return x
}

// ReduceMod4 returns x mod q assuming x < 4q via up to two conditional
// subtracts.
func ReduceMod4(x, q uint64) uint64 {
	assertRange("ReduceMod4.input", x, 4*q)
	if x >= 2*q {
		x -= 2 * q
	}
	if x >= q {
		x -= q
	}
	return x
}

// ReduceMod8 returns x mod q assuming x < 8q via up to three conditional
// subtracts.
func ReduceMod8(x, q uint64) uint64 {
	assertRange("ReduceMod8.input", x, 8*q)
	if x >= 4*q {
		x -= 4 * q
	}
	if x >= 2*q {
		x -= 2 * q
	}
	if x >= q {
		x -= q
	}
	return x
}

// MultiplyModLazy64 returns a value congruent to x*y (mod q) in [0, 2q),
// using a Barrett factor for y precomputed at shift 64. Preconditions: y < q,
// x and q fit in 64 bits (the full-width tier).
//
// Q = hi64(x * yPrecon); result = y*x - Q*q, both terms implicitly truncated
// to 64 bits by Go's wraparound arithmetic. The truncation is safe because
// the true result fits in the low 64 bits once the high-order bits cancel
// between the two terms.
func MultiplyModLazy64(x, y, yPrecon, q uint64) uint64 {
	Q := MulHi64(x, yPrecon)
	return y*x - Q*q
}

// MultiplyModLazy52 is MultiplyModLazy64's IFMA-width twin: the Barrett
// factor for y was precomputed at shift 52, and the high-product extraction
// uses MulHi52 instead of MulHi64. Preconditions: y < q, x <= 2^52-1,
// q <= 2^52-1.
func MultiplyModLazy52(x, y, yPrecon, q uint64) uint64 {
	Q := MulHi52(x, yPrecon)
	return y*x - Q*q
}
