package cellset

import (
	"errors"

	"github.com/katalvlaran/ndtrace/vec"
)

// Sentinel errors for cellset operations.
var (
	// ErrBadDimension indicates a non-positive dimensionality.
	ErrBadDimension = errors.New("cellset: dimension must be at least 1")
	// ErrDimensionMismatch indicates a cell whose length differs from the set's dimension.
	ErrDimensionMismatch = errors.New("cellset: cell dimension does not match set dimension")
)

// Connectivity selects which neighbouring cells count as adjacent.
type Connectivity int

const (
	// Face adjacency: cells differing by ±1 on exactly one axis.
	Face Connectivity = iota
	// Corner adjacency: cells differing by at most 1 on every axis.
	Corner
)

// String returns the connectivity name.
func (c Connectivity) String() string {
	switch c {
	case Face:
		return "face"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Set is a sparse set of lattice cells of a fixed dimension.
// The zero value is not usable; build sets with New or MustNew.
// A Set is not safe for concurrent mutation; concurrent reads are fine.
type Set struct {
	dim   int
	cells map[string]vec.Cell
}
