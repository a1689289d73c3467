package lattice

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ndtrace/vec"
)

// Tolerances used by every floating-point comparison in this package.
const (
	// ZeroEps treats |Δx_i| below it as no motion on axis i, and coordinates
	// within it of an integer as lying on a grid plane.
	ZeroEps = 1e-10

	// BoundaryEps detects a start lying exactly on a boundary of a moving axis.
	BoundaryEps = 1e-9

	// CellBias is added to every coordinate before flooring in ContainingCell.
	CellBias = 1e-8

	// StartGoalTol is the element-wise tolerance for start ≈ goal.
	StartGoalTol = 1e-12
)

// Sentinel errors.
var (
	// ErrEmptyPoint indicates a zero-dimensional start or goal.
	ErrEmptyPoint = errors.New("lattice: start and goal must have at least one coordinate")

	// ErrDimensionMismatch indicates start and goal of different lengths.
	ErrDimensionMismatch = errors.New("lattice: start and goal dimensions differ")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("lattice: coordinates must be finite")

	// ErrObstacleDimension indicates an obstacle set of another dimensionality.
	ErrObstacleDimension = errors.New("lattice: obstacle dimension differs from segment dimension")

	// ErrAlreadyReached is returned by Tracer.Next once the goal is reached.
	ErrAlreadyReached = errors.New("lattice: traversal already reached the goal")

	// ErrStepLimit is returned when a traversal exceeds Options.MaxSteps.
	ErrStepLimit = errors.New("lattice: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")
)

// State is a node of the traversal driver's state machine.
//
//	START ──obstacle at start──▶ OBSTACLE_HIT
//	  │ ──start ≈ goal───────────▶ GOAL_REACHED
//	  ▼
//	STEPPING ──obstacle crossed──▶ OBSTACLE_HIT
//	  │
//	  └──min distance ≥ 1────────▶ GOAL_REACHED
//
// OBSTACLE_HIT and GOAL_REACHED are terminal.
type State int

const (
	// StateStart is the state before any test has run.
	StateStart State = iota
	// StateStepping means boundary crossings are being walked.
	StateStepping
	// StateObstacleHit means an obstacle cell stopped the traversal.
	StateObstacleHit
	// StateGoalReached means the segment was walked to its end.
	StateGoalReached
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StateStepping:
		return "STEPPING"
	case StateObstacleHit:
		return "OBSTACLE_HIT"
	case StateGoalReached:
		return "GOAL_REACHED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool {
	return s == StateObstacleHit || s == StateGoalReached
}

// Step is the snapshot a Tracer reports after initialization and after every
// boundary crossing.
type Step struct {
	// Index counts crossings so far; 0 is the initial snapshot.
	Index int

	// Axes lists, in increasing order, the axes that crossed a boundary in
	// this step. Empty for the initial snapshot.
	Axes []int

	// FrontCells are the absolute cells touched by the traversal boundary.
	FrontCells []vec.Cell

	// Coords is the continuous position reached.
	Coords vec.Point

	// Lattice is the current lattice corner.
	Lattice vec.Cell

	// Length is the Euclidean distance travelled from the start.
	Length float64

	// Reached is true once no crossing remains before the goal.
	Reached bool
}

// Result is the immutable outcome of Traverse.
//
// Path starts at the start point; when the goal is reached it ends with the
// exact goal point. Intersections holds the start point followed by every
// crossing point. FrontCellsHistory and LatticeHistory hold the initial
// snapshot followed by one entry per crossing.
//
// ObstacleHit and GoalReached can both be true: the segment ran to its end
// and the goal's own cell is an obstacle. Callers decide which one wins.
type Result struct {
	Path              []vec.Point
	FrontCellsHistory [][]vec.Cell
	Intersections     []vec.Point
	LatticeHistory    []vec.Cell
	ObstacleHit       bool
	GoalReached       bool

	// State is the terminal state; GOAL_REACHED when the segment ran to its end.
	State State

	// Steps is the number of boundary crossings walked.
	Steps int
}

// Option configures a traversal via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of Traverse.
type Options struct {
	// Ctx is checked between steps; cancellation stops the traversal.
	Ctx context.Context

	// OnStep is called after every crossing. A non-nil error aborts the
	// traversal and is returned by Traverse.
	OnStep func(Step) error

	// MaxSteps, if > 0, caps the number of crossings.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, a no-op hook and
// no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(Step) error { return nil },
	}
}

// WithContext sets a context checked between steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a hook run after every crossing.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps caps the number of crossings.
//
//	n > 0:  at most n crossings, ErrStepLimit beyond
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
