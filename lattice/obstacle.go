package lattice

import (
	"github.com/katalvlaran/ndtrace/cellset"
	"github.com/katalvlaran/ndtrace/vec"
)

// ContainingCell maps p to the lattice cell floor(p_i + CellBias) per axis.
// The bias keeps a point that sits on a boundary up to round-off error from
// falling into the lower cell.
func ContainingCell(p vec.Point) vec.Cell {
	return vec.FloorCell(p, CellBias)
}

// HitObstacle reports whether the cell containing p is in obstacles.
// A nil or empty set never reports a hit.
func HitObstacle(p vec.Point, obstacles *cellset.Set) bool {
	if obstacles.Len() == 0 {
		return false
	}

	return obstacles.Contains(ContainingCell(p))
}
