package ring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEltwiseFMAModBasic checks a small fixed-input FMA against hand-computed
// results.
func TestEltwiseFMAModBasic(t *testing.T) {
	arg1 := []uint64{1, 2, 3, 4}
	arg3 := []uint64{10, 20, 30, 40}
	out := make([]uint64, 4)

	require.NoError(t, EltwiseFMAMod(arg1, 5, arg3, out, 4, 97))
	require.Equal(t, []uint64{15, 30, 45, 60}, out)
}

func TestEltwiseFMAModNoArg3(t *testing.T) {
	arg1 := []uint64{1, 2, 3, 4}
	out := make([]uint64, 4)

	require.NoError(t, EltwiseFMAMod(arg1, 5, nil, out, 4, 97))
	require.Equal(t, []uint64{5, 10, 15, 20}, out)
}

func TestEltwiseFMAModAliasedOut(t *testing.T) {
	const q = uint64(97)
	arg1 := []uint64{1, 2, 3, 4}
	arg3 := []uint64{10, 20, 30, 40}

	aliasedArg1 := append([]uint64(nil), arg1...)
	require.NoError(t, EltwiseFMAMod(aliasedArg1, 5, arg3, aliasedArg1, 4, q))
	require.Equal(t, []uint64{15, 30, 45, 60}, aliasedArg1)

	aliasedArg3 := append([]uint64(nil), arg3...)
	require.NoError(t, EltwiseFMAMod(arg1, 5, aliasedArg3, aliasedArg3, 4, q))
	require.Equal(t, []uint64{15, 30, 45, 60}, aliasedArg3)
}

func TestEltwiseFMAModRandomAgreesWithDefinition(t *testing.T) {
	const q = uint64(1_000_000_007)
	const n = 137
	r := rand.New(rand.NewSource(11))

	arg1 := make([]uint64, n)
	arg3 := make([]uint64, n)
	for i := range arg1 {
		arg1[i] = r.Uint64() % q
		arg3[i] = r.Uint64() % q
	}
	arg2 := r.Uint64() % q

	out := make([]uint64, n)
	require.NoError(t, EltwiseFMAMod(arg1, arg2, arg3, out, n, q))

	for i := range out {
		want := MultiplyMod(arg1[i], arg2, q)
		want = AddMod(want, arg3[i], q)
		require.Equal(t, want, out[i])
	}
}

func TestEltwiseFMAModInvalidArguments(t *testing.T) {
	out := make([]uint64, 4)
	require.ErrorIs(t, EltwiseFMAMod([]uint64{1, 2, 3, 4}, 100, nil, out, 4, 97), ErrInvalidArguments)
	require.ErrorIs(t, EltwiseFMAMod([]uint64{1, 2}, 5, nil, out, 4, 97), ErrInvalidArguments)
}

// TestFMAVectorMatchesScalar calls fmaVector directly at both Barrett
// shifts, bypassing EltwiseFMAMod's hardware dispatch, and checks it agrees
// with fmaScalar element-for-element.
func TestFMAVectorMatchesScalar(t *testing.T) {
	const n = 137
	r := rand.New(rand.NewSource(22))

	for _, tc := range []struct {
		name  string
		q     uint64
		shift uint8
	}{
		{"ifma width", uint64(1) << 49, 52},
		{"full width", 1_000_000_007, 64},
	} {
		t.Run(tc.name, func(t *testing.T) {
			arg1 := make([]uint64, n)
			arg3 := make([]uint64, n)
			for i := range arg1 {
				arg1[i] = r.Uint64() % tc.q
				arg3[i] = r.Uint64() % tc.q
			}
			arg2 := r.Uint64()%(tc.q-1) + 1

			factor, err := NewBarrettFactor(arg2, tc.shift, tc.q)
			require.NoError(t, err)

			want := make([]uint64, n)
			fmaScalar(arg1, arg2, factor.Factor, arg3, want, tc.q, tc.shift)

			got := make([]uint64, n)
			fmaVector(arg1, arg2, factor.Factor, arg3, got, tc.q, tc.shift)

			require.Equal(t, want, got)
		})
	}
}

func BenchmarkEltwiseFMAMod(b *testing.B) {
	const q = uint64(1_000_000_007)
	const n = 4096
	arg1 := make([]uint64, n)
	arg3 := make([]uint64, n)
	out := make([]uint64, n)
	for i := range arg1 {
		arg1[i] = uint64(i) % q
		arg3[i] = uint64(i*3) % q
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EltwiseFMAMod(arg1, 12345, arg3, out, n, q)
	}
}
