package bitmatrix

import "math/bits"

// The functions below operate directly on raw packed rows (as returned by
// Row) and are building blocks for intersecting/excluding neighborhoods
// without allocating per-step. All take equal-length slices
// (RowLen() words) and require len(dst) == len(a) == len(b).

// And sets dst = a & b.
func And(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// AndNot sets dst = a &^ b.
func AndNot(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

// Or sets dst |= a.
func Or(dst, a []uint64) {
	for i := range dst {
		dst[i] |= a[i]
	}
}

// OrInto sets dst = a | b.
func OrInto(dst, a, b []uint64) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// ClearAll zeroes dst.
func ClearAll(dst []uint64) {
	for i := range dst {
		dst[i] = 0
	}
}

// SetBit sets bit v (global vertex index) within a row-length slice.
func SetBit(dst []uint64, v int) {
	dst[v/wordBits] |= uint64(1) << uint(v%wordBits)
}

// ClearBit clears bit v within a row-length slice.
func ClearBit(dst []uint64, v int) {
	dst[v/wordBits] &^= uint64(1) << uint(v%wordBits)
}

// TestBit reports whether bit v is set within a row-length slice.
func TestBit(src []uint64, v int) bool {
	return src[v/wordBits]&(uint64(1)<<uint(v%wordBits)) != 0
}

// ForEachSetBit invokes cb for every set bit in src (interpreted as packed
// vertex IDs), stopping early if cb returns false. Iterates words in order
// and bits within a word via trailing-zero count, so output is ascending.
func ForEachSetBit(src []uint64, cb func(v int) bool) {
	for i, w := range src {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			v := i*wordBits + tz
			w &= w - 1
			if !cb(v) {
				return
			}
		}
	}
}
