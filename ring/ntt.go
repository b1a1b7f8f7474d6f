package ring

// Table holds the per-modulus precomputation needed by the NTT engine: the
// forward and inverse root-of-unity power tables (in bit-reversed order),
// each paired with a Barrett-precomputed factor at both the default (64)
// and IFMA (52) shift, plus N^-1 mod Q for the inverse transform's final
// normalization.
type Table struct {
	N    uint64
	LogN uint64
	Q    uint64

	// RootsForward[i] = omega^br(i), i = 0..N-1 (entry 0 unused), consumed
	// by the forward Cooley-Tukey butterfly as RootsForward[m+i].
	RootsForward         []uint64
	RootsForwardPrecon64 []uint64
	RootsForwardPrecon52 []uint64 // populated only when Q < 2^50

	// RootsInverse[i] = omega^-br(i), consumed by the inverse
	// Gentleman-Sande butterfly the same way RootsForward is by the forward
	// one: seeding the same bit-reversed-scatter construction with
	// omega^-1 instead of omega covers the 1..N-1 index range exactly
	// once, so no separate indexing scheme is needed for the inverse
	// table (see DESIGN.md).
	RootsInverse         []uint64
	RootsInversePrecon64 []uint64
	RootsInversePrecon52 []uint64

	NInv       uint64 // N^-1 mod Q
	NInvPrecon uint64 // Barrett factor for NInv at shift 64
}

// NTT is an immutable, precomputed instance of the forward/inverse
// negacyclic transform for a fixed (N, Q, omega). Safe for concurrent use
// across disjoint coefficient buffers.
type NTT struct {
	q     uint64
	n     uint64
	omega uint64
	table *Table
	tier  Tier
}

// NewNTT constructs an NTT instance for a transform of length n over Z/qZ.
// If omega is supplied it must be a primitive 2n-th root of unity mod q
// (checked with IsPrimitiveRoot; ErrInvalidArguments otherwise); otherwise the canonical
// MinimalPrimitiveRoot(2n, q) is computed and used, so that two callers
// constructing an NTT for the same (n, q) without specifying omega get
// identical, reproducible tables.
func NewNTT(n, q uint64, omega ...uint64) (*NTT, error) {
	if n < 2 || (n&(n-1)) != 0 {
		return nil, ErrInvalidArguments
	}
	if q == 0 || q >= (1<<62) {
		return nil, ErrInvalidArguments
	}
	if !IsPrime(q) {
		return nil, ErrInvalidArguments
	}
	twoN := 2 * n
	if (q-1)%twoN != 0 {
		return nil, ErrInvalidArguments
	}

	var w uint64
	var err error
	if len(omega) > 0 {
		w = omega[0]
		if !IsPrimitiveRoot(w, twoN, q) {
			return nil, ErrInvalidArguments
		}
	} else {
		w, err = MinimalPrimitiveRoot(twoN, q)
		if err != nil {
			return nil, err
		}
	}

	table, err := buildTable(n, q, w)
	if err != nil {
		return nil, err
	}

	tracef("NewNTT: N=%d Q=%d omega=%d tier=%v", n, q, w, SelectTier(q, defaultCapabilities()))

	t := &NTT{
		q:     q,
		n:     n,
		omega: w,
		table: table,
		tier:  SelectTier(q, defaultCapabilities()),
	}
	return t, nil
}

func logTwo(n uint64) uint64 {
	return uint64(MSB(n))
}

// buildTable precomputes the forward and inverse root tables at both
// Barrett shifts: natural-order powers of the root are built by repeated
// multiplication and scattered directly into their bit-reversed slots.
func buildTable(n, q, omega uint64) (*Table, error) {
	logN := logTwo(n)

	omegaInv, err := InverseMod(omega, q)
	if err != nil {
		return nil, err
	}

	nInv, err := InverseMod(n%q, q)
	if err != nil {
		return nil, err
	}

	ifmaEligible := q < (1 << 50)

	t := &Table{
		N:    n,
		LogN: logN,
		Q:    q,

		RootsForward:         make([]uint64, n),
		RootsForwardPrecon64: make([]uint64, n),

		RootsInverse:         make([]uint64, n),
		RootsInversePrecon64: make([]uint64, n),

		NInv: nInv,
	}
	if ifmaEligible {
		t.RootsForwardPrecon52 = make([]uint64, n)
		t.RootsInversePrecon52 = make([]uint64, n)
	}

	fwd := uint64(1)
	inv := uint64(1)
	for j := uint64(0); j < n; j++ {
		idx := ReverseBits(j, uint(logN))

		t.RootsForward[idx] = fwd
		t.RootsInverse[idx] = inv

		fwd = MultiplyMod(fwd, omega, q)
		inv = MultiplyMod(inv, omegaInv, q)
	}

	for i := uint64(0); i < n; i++ {
		fwdFactor, err := NewBarrettFactor(t.RootsForward[i], 64, q)
		if err != nil {
			return nil, err
		}
		t.RootsForwardPrecon64[i] = fwdFactor.Factor

		invFactor, err := NewBarrettFactor(t.RootsInverse[i], 64, q)
		if err != nil {
			return nil, err
		}
		t.RootsInversePrecon64[i] = invFactor.Factor

		if ifmaEligible {
			fwdFactor52, err := NewBarrettFactor(t.RootsForward[i], 52, q)
			if err != nil {
				return nil, err
			}
			t.RootsForwardPrecon52[i] = fwdFactor52.Factor

			invFactor52, err := NewBarrettFactor(t.RootsInverse[i], 52, q)
			if err != nil {
				return nil, err
			}
			t.RootsInversePrecon52[i] = invFactor52.Factor
		}
	}

	nInvFactor, err := NewBarrettFactor(nInv, 64, q)
	if err != nil {
		return nil, err
	}
	t.NInvPrecon = nInvFactor.Factor

	return t, nil
}

// Forward computes the in-place forward negacyclic NTT of coeffs, which must
// have length N and hold values in [0, Q). On return coeffs holds the
// transform in bit-reversed order, still in [0, Q).
func (t *NTT) Forward(coeffs []uint64) error {
	if err := t.checkBuffer(coeffs); err != nil {
		return err
	}

	switch t.tier {
	case TierIFMA52:
		forwardVector(coeffs, t.table, 52)
	case TierVector64:
		forwardVector(coeffs, t.table, 64)
	default:
		forwardScalar(coeffs, t.table)
	}
	return nil
}

// Inverse computes the in-place inverse negacyclic NTT of coeffs, which must
// be in bit-reversed order with values in [0, Q). On return coeffs holds the
// natural-order result, in [0, Q).
func (t *NTT) Inverse(coeffs []uint64) error {
	if err := t.checkBuffer(coeffs); err != nil {
		return err
	}

	switch t.tier {
	case TierIFMA52:
		inverseVector(coeffs, t.table, 52)
	case TierVector64:
		inverseVector(coeffs, t.table, 64)
	default:
		inverseScalar(coeffs, t.table)
	}
	return nil
}

func (t *NTT) checkBuffer(coeffs []uint64) error {
	if uint64(len(coeffs)) != t.n {
		return ErrInvalidArguments
	}
	for _, c := range coeffs {
		if c >= t.q {
			return ErrInvalidArguments
		}
	}
	return nil
}

// N returns the transform length.
func (t *NTT) N() uint64 { return t.n }

// Q returns the modulus.
func (t *NTT) Q() uint64 { return t.q }

// Omega returns the primitive 2N-th root of unity used by this instance.
func (t *NTT) Omega() uint64 { return t.omega }

// Tier returns the arithmetic tier this instance dispatches to.
func (t *NTT) Tier() Tier { return t.tier }
