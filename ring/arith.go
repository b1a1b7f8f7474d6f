package ring

import "math/bits"

// MulHi64 returns the high 64 bits of the 128-bit product a*b, i.e. a logical
// right shift of the full product by 64.
func MulHi64(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// MulHi52 returns the high 64 bits of the 128-bit product a*b after a
// logical right shift by 52, as used by the IFMA-width Barrett path.
func MulHi52(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi<<12 | lo>>52
}

// MulHi32 returns the high 64 bits of the 128-bit product a*b after a
// logical right shift by 32.
func MulHi32(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi<<32 | lo>>32
}

// Div128To64 returns the low 64 bits of the quotient (hi:lo) / d. d must be
// non-zero and the true quotient must fit in 64 bits; bits.Div64 panics with
// an overflow error otherwise.
func Div128To64(hi, lo, d uint64) uint64 {
	q, _ := bits.Div64(hi, lo, d)
	return q
}

// ReverseBits reverses the lowest width bits of x, zeroing all higher bits.
func ReverseBits(x uint64, width uint) uint64 {
	return bits.Reverse64(x) >> (64 - width)
}

// MSB returns floor(log2(x)). Undefined for x == 0.
func MSB(x uint64) int {
	return bits.Len64(x) - 1
}

// AddCarry sets *out = a+b mod 2^64 and returns 1 iff unsigned overflow
// occurred.
func AddCarry(a, b uint64, out *uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	*out = sum
	return carry
}
