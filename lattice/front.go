package lattice

import (
	"math"

	"github.com/katalvlaran/ndtrace/vec"
)

// axisChoice is the front-cell decision for one axis: either a single forced
// offset, or both -1 and 0 when the segment runs inside a grid plane of that
// axis and the cell on that axis is two-valued.
type axisChoice struct {
	either bool
	offset int
}

// decideAxes computes one axisChoice per axis. The inputs never change during
// a run, so the result is computed once per Tracer.
func decideAxes(start vec.Point, delta []float64, sign []int) []axisChoice {
	choices := make([]axisChoice, len(start))
	for i := range start {
		if math.Abs(delta[i]) < ZeroEps && vec.IsIntegral(start[i], ZeroEps) {
			choices[i] = axisChoice{either: true}
			continue
		}
		if sign[i] < 0 {
			choices[i] = axisChoice{offset: -1}
		} else {
			choices[i] = axisChoice{offset: 0}
		}
	}

	return choices
}

// expandOffsets builds the cartesian product of the per-axis choices.
// Axis 0 is the most significant position and -1 precedes 0, which matches a
// depth-first walk over the axes. The result holds 2^(ambiguous axes) offsets.
func expandOffsets(choices []axisChoice) []vec.Cell {
	n := len(choices)
	size := 1
	for _, c := range choices {
		if c.either {
			size *= 2
		}
	}

	// Worklist of partial assignments, extended one axis at a time.
	partial := make([]vec.Cell, 1, size)
	partial[0] = make(vec.Cell, 0, n)
	for _, c := range choices {
		if !c.either {
			for j := range partial {
				partial[j] = append(partial[j], c.offset)
			}
			continue
		}
		next := make([]vec.Cell, 0, 2*len(partial))
		for _, p := range partial {
			lo := make(vec.Cell, len(p), n)
			copy(lo, p)
			hi := make(vec.Cell, len(p), n)
			copy(hi, p)
			next = append(next, append(lo, -1), append(hi, 0))
		}
		partial = next
	}

	return partial
}

// frontCells translates offsets to absolute cells around corner.
func frontCells(corner vec.Cell, offsets []vec.Cell) []vec.Cell {
	out := make([]vec.Cell, len(offsets))
	for i, off := range offsets {
		out[i] = corner.Add(off)
	}

	return out
}
