package ring

import "unsafe"

// lanes is the width the vector tiers unroll by, standing in for an 8-lane
// AVX512 register (512 bits / 64 bits per lane) since this module emits
// portable Go rather than hand-written assembly.
const lanes = 8

// forwardVector computes the same forward transform as forwardScalar, one
// level at a time, but processes inner butterfly blocks lanes-wide via
// unsafe pointer casts to [8]uint64 when a block is at least that wide.
// shift selects the Barrett-precomputed root table and MultiplyModLazy
// variant (52 for the IFMA tier, 64 for the AVX512DQ tier); both produce
// results bit-identical to forwardScalar on any input in [0,q).
func forwardVector(coeffs []uint64, table *Table, shift uint8) {
	q := table.Q
	twoQ := 2 * q
	n := table.N

	roots, precon := vectorForwardRoots(table, shift)

	t := n / 2
	for m := uint64(1); m < n; m <<= 1 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			w := roots[m+i]
			wPrecon := precon[m+i]

			block := coeffs[j1 : j1+2*t]
			forwardButterflyBlock(block, t, w, wPrecon, q, twoQ, shift)

			j1 += 2 * t
		}
		t /= 2
	}

	normalizeScalar(coeffs, q)
}

// forwardButterflyBlock applies one (W, Wprecon) butterfly across a
// contiguous block of 2*t coefficients (lo half at [0,t), hi half at
// [t,2t)), lanes-wide when t allows it.
func forwardButterflyBlock(block []uint64, t, w, wPrecon, q, twoQ uint64, shift uint8) {
	lo := block[:t]
	hi := block[t:]

	j := uint64(0)
	for ; j+lanes <= t; j += lanes {
		loPtr := (*[lanes]uint64)(unsafe.Pointer(&lo[j]))
		hiPtr := (*[lanes]uint64)(unsafe.Pointer(&hi[j]))
		for k := 0; k < lanes; k++ {
			x := loPtr[k]
			if x >= twoQ {
				x -= twoQ
			}
			qq := multiplyModLazyShift(hiPtr[k], w, wPrecon, q, shift)
			loPtr[k] = x + qq
			hiPtr[k] = x + twoQ - qq
		}
	}
	for ; j < t; j++ {
		x := lo[j]
		if x >= twoQ {
			x -= twoQ
		}
		qq := multiplyModLazyShift(hi[j], w, wPrecon, q, shift)
		lo[j] = x + qq
		hi[j] = x + twoQ - qq
	}
}

// inverseVector mirrors inverseScalar with the same lanes-wide unrolling
// strategy as forwardVector.
func inverseVector(coeffs []uint64, table *Table, shift uint8) {
	q := table.Q
	twoQ := 2 * q
	n := table.N

	roots, precon := vectorInverseRoots(table, shift)

	t := uint64(1)
	for m := n / 2; m >= 1; m /= 2 {
		j1 := uint64(0)
		for i := uint64(0); i < m; i++ {
			w := roots[m+i]
			wPrecon := precon[m+i]

			block := coeffs[j1 : j1+2*t]
			inverseButterflyBlock(block, t, w, wPrecon, q, twoQ, shift)

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

func inverseButterflyBlock(block []uint64, t, w, wPrecon, q, twoQ uint64, shift uint8) {
	lo := block[:t]
	hi := block[t:]

	j := uint64(0)
	for ; j+lanes <= t; j += lanes {
		loPtr := (*[lanes]uint64)(unsafe.Pointer(&lo[j]))
		hiPtr := (*[lanes]uint64)(unsafe.Pointer(&hi[j]))
		for k := 0; k < lanes; k++ {
			tx := loPtr[k] + hiPtr[k]
			ty := loPtr[k] + twoQ - hiPtr[k]
			if tx >= twoQ {
				tx -= twoQ
			}
			loPtr[k] = tx
			hiPtr[k] = multiplyModLazyShift(ty, w, wPrecon, q, shift)
		}
	}
	for ; j < t; j++ {
		tx := lo[j] + hi[j]
		ty := lo[j] + twoQ - hi[j]
		if tx >= twoQ {
			tx -= twoQ
		}
		lo[j] = tx
		hi[j] = multiplyModLazyShift(ty, w, wPrecon, q, shift)
	}
}

func multiplyModLazyShift(x, y, yPrecon, q uint64, shift uint8) uint64 {
	if shift == 52 {
		return MultiplyModLazy52(x, y, yPrecon, q)
	}
	return MultiplyModLazy64(x, y, yPrecon, q)
}

func vectorForwardRoots(table *Table, shift uint8) (roots, precon []uint64) {
	if shift == 52 {
		return table.RootsForward, table.RootsForwardPrecon52
	}
	return table.RootsForward, table.RootsForwardPrecon64
}

func vectorInverseRoots(table *Table, shift uint8) (roots, precon []uint64) {
	if shift == 52 {
		return table.RootsInverse, table.RootsInversePrecon52
	}
	return table.RootsInverse, table.RootsInversePrecon64
}
