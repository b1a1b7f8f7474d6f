package ring

// ForwardNaive computes the forward negacyclic NTT of coeffs using only
// MultiplyMod, AddMod, and SubMod: no Barrett-factor precomputation, no lazy
// [0,4q) range, every intermediate value fully reduced to [0,q) after each
// operation. It exists purely as an independent cross-check for the fast
// scalar and vector paths, which share precomputed tables and lazy-reduction
// machinery and so could both be wrong in the same way; this path shares
// none of that machinery.
//
// coeffs must have length table.N and hold values in [0, Q). On return
// coeffs holds the transform in bit-reversed order, the same output
// convention as forwardScalar and forwardVector.
func ForwardNaive(coeffs []uint64, table *Table) {
	q := table.Q
	n := table.N

	t := n / 2
	for m := uint64(1); m < n; m <<= 1 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			j2 := j1 + t
			w := table.RootsForward[m+i]

			for j := j1; j < j2; j++ {
				u := coeffs[j]
				v := MultiplyMod(coeffs[j+t], w, q)

				coeffs[j] = AddMod(u, v, q)
				coeffs[j+t] = SubMod(u, v, q)
			}
			j1 += 2 * t
		}
		t /= 2
	}
}
