package ring

import "github.com/klauspost/cpuid/v2"

// Tier identifies which arithmetic backend an NTT or FMA call dispatches to.
// The inner loops of each tier are monomorphic; selection happens once, at
// NTT construction or on each EltwiseFMAMod call, never per-butterfly.
type Tier int

const (
	// TierScalar64 is the portable reference path: one coefficient at a
	// time, MultiplyModLazy64.
	TierScalar64 Tier = iota
	// TierVector64 processes coefficients 8 at a time using MultiplyModLazy64,
	// standing in for the AVX512DQ 64-bit vector path.
	TierVector64
	// TierIFMA52 processes coefficients 8 at a time using MultiplyModLazy52,
	// standing in for the AVX512-IFMA 52-bit path. Only eligible when the
	// modulus fits under 2^50.
	TierIFMA52
)

func (t Tier) String() string {
	switch t {
	case TierIFMA52:
		return "ifma52"
	case TierVector64:
		return "vector64"
	default:
		return "scalar64"
	}
}

// ifmaModulusBound is the bit-width ceiling under which the IFMA-52 tier is
// eligible. buildTable uses the same bound to decide whether to populate
// the 52-bit Barrett factors at all.
const ifmaModulusBound = uint64(1) << 50

// capabilities is the subset of CPU feature bits this package consumes; the
// probing itself is left to cpuid.CPU rather than reimplemented here.
type capabilities struct {
	ifma     bool
	avx512dq bool
}

// defaultCapabilities probes the running CPU via cpuid.
func defaultCapabilities() capabilities {
	return capabilities{
		ifma:     cpuid.CPU.Supports(cpuid.AVX512IFMA),
		avx512dq: cpuid.CPU.Supports(cpuid.AVX512DQ),
	}
}

// SelectTier picks IFMA-52 if the hardware supports it and the modulus is
// narrow enough, else the 64-bit vector path if AVX512DQ is available, else
// the scalar reference.
func SelectTier(q uint64, caps capabilities) Tier {
	switch {
	case caps.ifma && q < ifmaModulusBound:
		return TierIFMA52
	case caps.avx512dq:
		return TierVector64
	default:
		return TierScalar64
	}
}
