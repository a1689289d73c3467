package cellset

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ndtrace/vec"
)

// New builds a Set of dimension dim holding the given cells.
// Cells are deep-copied; duplicates collapse.
// Returns ErrBadDimension if dim < 1 and ErrDimensionMismatch if any cell
// has a different length.
func New(dim int, cells ...vec.Cell) (*Set, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	s := &Set{dim: dim, cells: make(map[string]vec.Cell, len(cells))}
	for _, c := range cells {
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for tests and static tables.
func MustNew(dim int, cells ...vec.Cell) *Set {
	s, err := New(dim, cells...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dim returns the dimensionality of every member cell.
func (s *Set) Dim() int { return s.dim }

// Len returns the number of distinct cells. A nil Set is empty.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.cells)
}

// Add inserts a copy of c.
func (s *Set) Add(c vec.Cell) error {
	if len(c) != s.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(c), s.dim)
	}
	s.cells[c.Key()] = c.Clone()

	return nil
}

// Contains reports whether c is a member. A nil Set contains nothing, and
// a cell of the wrong dimension is never a member.
func (s *Set) Contains(c vec.Cell) bool {
	if s == nil || len(c) != s.dim {
		return false
	}
	_, ok := s.cells[c.Key()]

	return ok
}

// Cells returns copies of all members sorted lexicographically.
func (s *Set) Cells() []vec.Cell {
	if s == nil {
		return nil
	}
	out := make([]vec.Cell, 0, len(s.cells))
	for _, c := range s.cells {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, vec.Cell.Compare)

	return out
}

// Union returns a new Set with the members of s and o.
// Both sets must share the same dimension.
func (s *Set) Union(o *Set) (*Set, error) {
	out, err := New(s.dim, s.Cells()...)
	if err != nil {
		return nil, err
	}
	for _, c := range o.Cells() {
		if err := out.Add(c); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// NeighborOffsets enumerates the offsets of all neighbours of a cell under
// the given connectivity, in lexicographic order.
//
//	Face:   2·dim offsets.
//	Corner: 3^dim − 1 offsets.
func NeighborOffsets(dim int, conn Connectivity) []vec.Cell {
	if dim < 1 {
		return nil
	}
	if conn == Face {
		out := make([]vec.Cell, 0, 2*dim)
		for i := 0; i < dim; i++ {
			lo := make(vec.Cell, dim)
			lo[i] = -1
			out = append(out, lo)
		}
		for i := dim - 1; i >= 0; i-- {
			hi := make(vec.Cell, dim)
			hi[i] = 1
			out = append(out, hi)
		}

		return out
	}

	// Corner: every vector in {-1,0,1}^dim except the origin.
	offsets := []vec.Cell{{}}
	for i := 0; i < dim; i++ {
		next := make([]vec.Cell, 0, len(offsets)*3)
		for _, prefix := range offsets {
			for _, v := range []int{-1, 0, 1} {
				cell := make(vec.Cell, len(prefix)+1)
				copy(cell, prefix)
				cell[len(prefix)] = v
				next = append(next, cell)
			}
		}
		offsets = next
	}
	out := offsets[:0]
	for _, o := range offsets {
		if !isOrigin(o) {
			out = append(out, o)
		}
	}

	return out
}

func isOrigin(c vec.Cell) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}

	return true
}
