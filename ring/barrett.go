package ring

import "math/bits"

// BarrettFactor is an immutable operand/precomputed-factor pair:
//
//	Factor = floor((Operand << Shift) / Modulus)
//
// used to replace a division with a shifted multiply inside
// MultiplyModLazy52/64 and MultiplyModPrecon. Shift must be one of {32, 52, 64}. Constructed
// once per (operand, shift, modulus) and read-only thereafter.
type BarrettFactor struct {
	Operand uint64
	Factor  uint64
	Shift   uint8
}

// NewBarrettFactor builds the Barrett factor for operand at the given shift
// modulo q. Requires operand <= q and shift in {32, 52, 64}.
func NewBarrettFactor(operand uint64, shift uint8, q uint64) (BarrettFactor, error) {
	if shift != 32 && shift != 52 && shift != 64 {
		return BarrettFactor{}, ErrInvalidArguments
	}
	if operand > q {
		return BarrettFactor{}, ErrInvalidArguments
	}
	if q == 0 {
		return BarrettFactor{}, ErrInvalidArguments
	}

	// factor = floor((operand << shift) / q), computed as a 128-bit division
	// (hi:lo) / q with hi = operand >> (64-shift) and lo = operand << shift
	// (for shift == 64 this is hi = operand, lo = 0, spelled out explicitly
	// in the branch below).
	var hi, lo uint64
	if shift == 64 {
		hi, lo = operand, 0
	} else {
		hi = operand >> (64 - shift)
		lo = operand << shift
	}

	factor := Div128To64(hi, lo, q)

	return BarrettFactor{Operand: operand, Factor: factor, Shift: shift}, nil
}

// BarrettConstant64 returns floor(2^64/q), the single-word Barrett constant
// consumed by BarrettReduce64.
func BarrettConstant64(q uint64) uint64 {
	q1, _ := bits.Div64(1, 0, q)
	return q1
}

// barrettReduceParams computes floor(2^128/q) as a 128-bit value (hi, lo),
// the pair MultiplyMod needs to reduce a full 128-bit product. hi equals
// BarrettConstant64(q); computed as two chained 64-bit divisions rather than
// math/big, since q < 2^62 keeps every intermediate quotient within
// bits.Div64's hi < divisor precondition.
func barrettReduceParams(q uint64) (hi, lo uint64) {
	q1, r1 := bits.Div64(1, 0, q) // floor(2^64/q), 2^64 mod q
	q2, _ := bits.Div64(r1, 0, q) // floor(r1<<64/q) == the next 64 bits of 2^128/q
	return q1, q2
}
