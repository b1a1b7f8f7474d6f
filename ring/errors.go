package ring

import "errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is rather than string-matching.
var (
	// ErrInvalidArguments is returned when a precondition on N, q, a shift,
	// or an operand bound is violated.
	ErrInvalidArguments = errors.New("ring: invalid arguments")

	// ErrNoInverse is returned by InverseMod when gcd(x, q) != 1.
	ErrNoInverse = errors.New("ring: no modular inverse exists")

	// ErrNoPrimitiveRoot is returned when GeneratePrimitiveRoot exhausts its
	// trial budget.
	ErrNoPrimitiveRoot = errors.New("ring: could not find a primitive root")

	// ErrNotEnoughPrimes is returned when GeneratePrimes cannot find enough
	// NTT-friendly primes in the requested bit range.
	ErrNotEnoughPrimes = errors.New("ring: not enough NTT-friendly primes found")

	// ErrInternalRangeViolation indicates a reduction produced a value
	// outside the range the calling algorithm's invariant promises. It
	// signals a bug in this package, not a caller error.
	ErrInternalRangeViolation = errors.New("ring: internal range invariant violated")
)
