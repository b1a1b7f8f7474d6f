package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrimeAgreesWithSieve(t *testing.T) {
	const limit = 1 << 16 // kept small to keep the sieve comparison cheap
	sieve := make([]bool, limit)
	for i := range sieve {
		sieve[i] = true
	}
	sieve[0], sieve[1] = false, false
	for p := 2; p*p < limit; p++ {
		if sieve[p] {
			for m := p * p; m < limit; m += p {
				sieve[m] = false
			}
		}
	}

	for n := 0; n < limit; n++ {
		require.Equal(t, sieve[n], IsPrime(uint64(n)), "n=%d", n)
	}
}

func TestIsPrimeKnownValues(t *testing.T) {
	require.True(t, IsPrime(2))
	require.True(t, IsPrime(17))
	require.True(t, IsPrime(1_000_000_007))
	require.False(t, IsPrime(0))
	require.False(t, IsPrime(1))
	require.False(t, IsPrime(4))
	require.False(t, IsPrime(1_000_000_008))
}

func TestGeneratePrimesNTTFriendly(t *testing.T) {
	const n = uint64(1024)
	primes, err := GeneratePrimes(3, 30, true, n)
	require.NoError(t, err)
	require.Len(t, primes, 3)

	twoN := 2 * n
	for _, p := range primes {
		require.True(t, IsPrime(p))
		require.Zero(t, (p-1)%twoN)
		require.GreaterOrEqual(t, p, uint64(1)<<30)
	}
}

func TestGeneratePrimesPreferLarge(t *testing.T) {
	const n = uint64(1024)
	primes, err := GeneratePrimes(2, 30, false, n)
	require.NoError(t, err)
	require.Len(t, primes, 2)

	twoN := 2 * n
	for _, p := range primes {
		require.True(t, IsPrime(p))
		require.Zero(t, (p-1)%twoN)
		require.Less(t, p, uint64(1)<<31)
	}
}

func TestGeneratePrimesInvalidArguments(t *testing.T) {
	_, err := GeneratePrimes(0, 30, true, 1024)
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = GeneratePrimes(1, 30, true, 1000) // not a power of two
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestIsPrimitiveRoot(t *testing.T) {
	require.True(t, IsPrimitiveRoot(3, 16, 17))
	require.False(t, IsPrimitiveRoot(2, 16, 17))
}

func TestMinimalPrimitiveRootKnownValue(t *testing.T) {
	got, err := MinimalPrimitiveRoot(16, 17)
	require.NoError(t, err)
	require.Equal(t, uint64(3), got)
}

func TestMinimalPrimitiveRootIsSmallest(t *testing.T) {
	const degree, q = uint64(16), uint64(17)
	got, err := MinimalPrimitiveRoot(degree, q)
	require.NoError(t, err)
	for c := uint64(2); c < got; c++ {
		require.False(t, IsPrimitiveRoot(c, degree, q), "candidate %d below %d should not be primitive", c, got)
	}
}

func TestGeneratePrimitiveRootRoundTrip(t *testing.T) {
	const degree, q = uint64(16), uint64(17)
	g, err := GeneratePrimitiveRoot(degree, q)
	require.NoError(t, err)
	require.True(t, IsPrimitiveRoot(g, degree, q))
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(1_000_000_007)
	}
}

func BenchmarkMinimalPrimitiveRoot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = MinimalPrimitiveRoot(16, 17)
	}
}
