package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndtrace/vec"
	"gonum.org/v1/gonum/floats"
)

// Tracer is the mutable state of one traversal. It is advanced one boundary
// crossing at a time with Next until Reached reports true.
//
// A Tracer must not be shared between goroutines.
type Tracer struct {
	start    vec.Point
	delta    []float64
	absDelta []float64
	norm     float64
	sign     []int

	lattice vec.Cell  // current lattice corner
	crossed []int     // per-axis count of boundary crossings
	dist    []float64 // per-axis parametric distance to the next crossing
	dist0   []float64 // dist at initialization
	length  float64   // Euclidean distance travelled

	choices []axisChoice
	steps   int
}

// NewTracer initializes a traversal from start to goal.
//
// Steps:
//  1. Δx = goal − start, δx = sign(Δx), ||Δx||.
//  2. Lattice corner: floor(start_i) if Δx_i ≥ 0, else ceil(start_i).
//  3. Parametric distance to the first crossing on every axis:
//     Δx_i < 0:        (⌊start_i⌋ − start_i) / Δx_i
//     |Δx_i| < ZeroEps: +∞
//     otherwise:       (⌈start_i⌉ − start_i) / Δx_i
//     A value below BoundaryEps on a moving axis means the start lies on a
//     boundary; it is replaced by 1/|Δx_i|, the width of one full cell.
//  4. Front-cell decisions for every axis.
//
// Returns ErrEmptyPoint, ErrDimensionMismatch or ErrNonFinite for invalid input.
func NewTracer(start, goal vec.Point) (*Tracer, error) {
	if err := validateSegment(start, goal); err != nil {
		return nil, err
	}

	n := len(start)
	t := &Tracer{
		start:    start.Clone(),
		delta:    goal.Sub(start),
		absDelta: make([]float64, n),
		sign:     make([]int, n),
		crossed:  make([]int, n),
		dist:     make([]float64, n),
	}
	t.norm = vec.Norm(t.delta)
	for i, d := range t.delta {
		t.absDelta[i] = math.Abs(d)
		t.sign[i] = vec.Sign(d)
	}
	t.lattice = vec.DirectedCell(t.start, t.delta)

	for i := 0; i < n; i++ {
		s, d := t.start[i], t.delta[i]
		var p float64
		switch {
		case d < 0:
			p = (math.Floor(s) - s) / d
		case t.absDelta[i] < ZeroEps:
			p = math.Inf(1)
		default:
			p = (math.Ceil(s) - s) / d
		}
		if math.Abs(p) < BoundaryEps && t.absDelta[i] > BoundaryEps {
			p = 1 / t.absDelta[i]
		}
		t.dist[i] = p
	}
	t.dist0 = make([]float64, n)
	copy(t.dist0, t.dist)

	t.choices = decideAxes(t.start, t.delta, t.sign)

	return t, nil
}

func validateSegment(start, goal vec.Point) error {
	if len(start) == 0 || len(goal) == 0 {
		return ErrEmptyPoint
	}
	if len(start) != len(goal) {
		return fmt.Errorf("%w: start has %d, goal has %d", ErrDimensionMismatch, len(start), len(goal))
	}
	if !start.Finite() || !goal.Finite() {
		return ErrNonFinite
	}

	return nil
}

// Dim returns the dimensionality of the segment.
func (t *Tracer) Dim() int { return len(t.start) }

// StepIndex returns the number of crossings walked so far.
func (t *Tracer) StepIndex() int { return t.steps }

// Reached reports whether min_i dist_i ≥ 1, i.e. no crossing remains
// before the goal. Once true the Tracer must not be advanced.
func (t *Tracer) Reached() bool {
	return floats.Min(t.dist) >= 1.0
}

// Length returns the Euclidean distance travelled from the start.
func (t *Tracer) Length() float64 { return t.length }

// Coords returns start + (length/||Δx||)·Δx, or the start itself for a
// zero-length segment.
func (t *Tracer) Coords() vec.Point {
	if t.norm == 0 {
		return t.start.Clone()
	}
	out := make(vec.Point, len(t.start))
	f := t.length / t.norm
	for i := range out {
		out[i] = t.start[i] + f*t.delta[i]
	}

	return out
}

// Lattice returns a copy of the current lattice corner.
func (t *Tracer) Lattice() vec.Cell { return t.lattice.Clone() }

// FrontOffsets returns the offsets, each component in {-1, 0}, from the
// lattice corner to the front cells.
func (t *Tracer) FrontOffsets() []vec.Cell {
	return expandOffsets(t.choices)
}

// FrontCells returns the absolute cells touched by the traversal boundary at
// the current lattice corner.
func (t *Tracer) FrontCells() []vec.Cell {
	return frontCells(t.lattice, t.FrontOffsets())
}

// Snapshot reports the current state without advancing.
func (t *Tracer) Snapshot() Step {
	return Step{
		Index:      t.steps,
		FrontCells: t.FrontCells(),
		Coords:     t.Coords(),
		Lattice:    t.Lattice(),
		Length:     t.length,
		Reached:    t.Reached(),
	}
}

// Next advances to the nearest boundary crossing.
//
// Every axis whose distance equals the minimum m crosses together:
//  1. its crossing count k_i is incremented;
//  2. length = m·||Δx||;
//  3. dist_i = dist0_i + k_i/|Δx_i| (or +∞ for a still axis), computed from
//     the crossing index so no error accumulates;
//  4. lattice_i moves by δx_i.
//
// Returns ErrAlreadyReached, with the current snapshot, once Reached is true.
func (t *Tracer) Next() (Step, error) {
	if t.Reached() {
		return t.Snapshot(), ErrAlreadyReached
	}

	m := floats.Min(t.dist)
	axes := make([]int, 0, len(t.dist))
	for i, d := range t.dist {
		if d == m {
			axes = append(axes, i)
		}
	}

	for _, i := range axes {
		t.crossed[i]++
	}
	t.length = m * t.norm
	for _, i := range axes {
		if t.absDelta[i] > ZeroEps {
			t.dist[i] = t.dist0[i] + float64(t.crossed[i])/t.absDelta[i]
		} else {
			t.dist[i] = math.Inf(1)
		}
	}
	for _, i := range axes {
		t.lattice[i] += t.sign[i]
	}
	t.steps++

	step := t.Snapshot()
	step.Axes = axes

	return step, nil
}
