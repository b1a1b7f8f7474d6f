package ring

// forwardScalar computes the in-place forward negacyclic NTT using a Harvey
// butterfly / Cooley-Tukey layout: natural-order input, bit-reversed-order
// output, every element held in the lazy [0,4q) range between levels and
// normalized to [0,q) only in the final pass.
func forwardScalar(coeffs []uint64, table *Table) {
	q := table.Q
	twoQ := 2 * q
	n := table.N

	t := n / 2
	for m := uint64(1); m < n; m <<= 1 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			j2 := j1 + t
			w := table.RootsForward[m+i]
			wPrecon := table.RootsForwardPrecon64[m+i]

			for j := j1; j < j2; j++ {
				assertRange("forwardScalar.X[j]", coeffs[j], 4*q)
				assertRange("forwardScalar.X[j+t]", coeffs[j+t], 4*q)

				x := coeffs[j]
				if x >= twoQ {
					x -= twoQ
				}
				qq := MultiplyModLazy64(coeffs[j+t], w, wPrecon, q)

				coeffs[j] = x + qq
				coeffs[j+t] = x + twoQ - qq
			}
			j1 += 2 * t
		}
		t /= 2
	}

	normalizeScalar(coeffs, q)
}

// inverseScalar computes the in-place inverse negacyclic NTT using the
// Gentleman-Sande butterfly: bit-reversed-order input, natural-order output.
// Every level mirrors forwardScalar's table indexing (RootsInverse shares
// the same bit-reversed layout as RootsForward; see Table's doc comment),
// followed by one pass that brings each element from [0,2q) to [0,q) and
// multiplies it by N^-1 (MultiplyModPrecon, result in [0,q)).
func inverseScalar(coeffs []uint64, table *Table) {
	q := table.Q
	twoQ := 2 * q
	n := table.N

	t := uint64(1)
	for m := n / 2; m >= 1; m /= 2 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			j2 := j1 + t
			w := table.RootsInverse[m+i]
			wPrecon := table.RootsInversePrecon64[m+i]

			for j := j1; j < j2; j++ {
				assertRange("inverseScalar.X[j]", coeffs[j], 4*q)
				assertRange("inverseScalar.X[j+t]", coeffs[j+t], 4*q)

				tx := coeffs[j] + coeffs[j+t]
				ty := coeffs[j] + twoQ - coeffs[j+t]

				if tx >= twoQ {
					tx -= twoQ
				}
				coeffs[j] = tx
				coeffs[j+t] = MultiplyModLazy64(ty, w, wPrecon, q)
			}
			j1 += 2 * t
		}
		t *= 2
	}

	for i := uint64(0); i < n; i++ {
		x := coeffs[i]
		if x >= q {
			x -= q
		}
		coeffs[i] = MultiplyModPrecon(x, table.NInv, table.NInvPrecon, q)
	}
}

// normalizeScalar reduces every element of coeffs from the lazy [0,4q) range
// down to the canonical [0,q) range via two conditional subtracts.
func normalizeScalar(coeffs []uint64, q uint64) {
	twoQ := 2 * q
	for i := range coeffs {
		x := coeffs[i]
		if x >= twoQ {
			x -= twoQ
		}
		if x >= q {
			x -= q
		}
		coeffs[i] = x
	}
}
