package bitmatrix

import (
	"fmt"
	"math/bits"
)

// wordBits is the width W of a packed row word.
const wordBits = 64

// Matrix is a packed, symmetric n×n bit matrix. It is used both as the
// working graph G (has_edge) and as the edit mask E (has been touched).
//
// rows[u] holds ceil(n/64) words; bit (v % 64) of rows[u][v/64] is set iff
// (u,v) is present. Matrix never stores a set diagonal bit.
type Matrix struct {
	n       int
	rowLen  int
	rows    [][]uint64
}

// New allocates an empty (no edges) symmetric n×n Matrix.
// Complexity: O(n^2/64).
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	rowLen := wordsNeeded(n)
	rows := make([][]uint64, n)
	for i := range rows {
		rows[i] = make([]uint64, rowLen)
	}
	return &Matrix{n: n, rowLen: rowLen, rows: rows}, nil
}

// wordsNeeded returns ceil(n/64), which is 0 for a zero-vertex matrix (it
// has no rows to address).
func wordsNeeded(n int) int {
	if n == 0 {
		return 0
	}
	return (n + wordBits - 1) / wordBits
}

// Size returns n, the number of vertices.
func (m *Matrix) Size() int { return m.n }

// RowLen returns the number of uint64 words per row (ceil(n/64)).
func (m *Matrix) RowLen() int { return m.rowLen }

// Row returns the packed row for vertex u. Callers must not retain it past
// a structural mutation of m, and must not mutate it directly (use
// SetEdge/ClearEdge/ToggleEdge to preserve symmetry).
func (m *Matrix) Row(u int) ([]uint64, error) {
	if u < 0 || u >= m.n {
		return nil, fmt.Errorf("bitmatrix: Row(%d): %w", u, ErrOutOfRange)
	}
	return m.rows[u], nil
}

func (m *Matrix) checkPair(u, v int) error {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return fmt.Errorf("bitmatrix: pair (%d,%d): %w", u, v, ErrOutOfRange)
	}
	if u == v {
		return fmt.Errorf("bitmatrix: pair (%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	return nil
}

// HasEdge reports whether (u,v) is set. Undefined pairs (out of range)
// report false.
func (m *Matrix) HasEdge(u, v int) bool {
	if u < 0 || u >= m.n || v < 0 || v >= m.n || u == v {
		return false
	}
	return m.rows[u][v/wordBits]&(uint64(1)<<uint(v%wordBits)) != 0
}

// SetEdge sets (u,v) and (v,u).
// Complexity: O(1).
func (m *Matrix) SetEdge(u, v int) error {
	if err := m.checkPair(u, v); err != nil {
		return err
	}
	m.rows[u][v/wordBits] |= uint64(1) << uint(v%wordBits)
	m.rows[v][u/wordBits] |= uint64(1) << uint(u%wordBits)
	return nil
}

// ClearEdge clears (u,v) and (v,u).
// Complexity: O(1).
func (m *Matrix) ClearEdge(u, v int) error {
	if err := m.checkPair(u, v); err != nil {
		return err
	}
	m.rows[u][v/wordBits] &^= uint64(1) << uint(v%wordBits)
	m.rows[v][u/wordBits] &^= uint64(1) << uint(u%wordBits)
	return nil
}

// ToggleEdge flips (u,v) and (v,u). Round-trip: ToggleEdge twice restores
// the original state bit-for-bit.
// Complexity: O(1).
func (m *Matrix) ToggleEdge(u, v int) error {
	if err := m.checkPair(u, v); err != nil {
		return err
	}
	m.rows[u][v/wordBits] ^= uint64(1) << uint(v%wordBits)
	m.rows[v][u/wordBits] ^= uint64(1) << uint(u%wordBits)
	return nil
}

// CountEdges returns the number of unordered pairs set in m.
// Complexity: O(n*L).
func (m *Matrix) CountEdges() int {
	total := 0
	for u := 0; u < m.n; u++ {
		for _, w := range m.rows[u] {
			total += bits.OnesCount64(w)
		}
	}
	return total / 2
}

// Degree returns the number of neighbors of u.
// Complexity: O(L).
func (m *Matrix) Degree(u int) (int, error) {
	if u < 0 || u >= m.n {
		return 0, fmt.Errorf("bitmatrix: Degree(%d): %w", u, ErrOutOfRange)
	}
	deg := 0
	for _, w := range m.rows[u] {
		deg += bits.OnesCount64(w)
	}
	return deg, nil
}

// AllocRows returns k*RowLen() zeroed words, room for k packed rows of
// scratch space.
func (m *Matrix) AllocRows(k int) []uint64 {
	return make([]uint64, k*m.rowLen)
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, rowLen: m.rowLen, rows: make([][]uint64, m.n)}
	for i, row := range m.rows {
		c.rows[i] = append([]uint64(nil), row...)
	}
	return c
}

// Neighbors appends every vertex v with HasEdge(u,v) to dst in ascending
// order and returns the extended slice.
// Complexity: O(L + deg(u)).
func (m *Matrix) Neighbors(u int, dst []int) ([]int, error) {
	if u < 0 || u >= m.n {
		return dst, fmt.Errorf("bitmatrix: Neighbors(%d): %w", u, ErrOutOfRange)
	}
	row := m.rows[u]
	for i, w := range row {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			v := i*wordBits + tz
			w &= w - 1
			dst = append(dst, v)
		}
	}
	return dst, nil
}

// ForEachNeighbor invokes cb for every neighbor of u in ascending order,
// stopping early if cb returns false.
// Complexity: O(L + deg(u)).
func (m *Matrix) ForEachNeighbor(u int, cb func(v int) bool) {
	for i, w := range m.rows[u] {
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
