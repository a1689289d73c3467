package lattice

import (
	"fmt"

	"github.com/katalvlaran/ndtrace/cellset"
	"github.com/katalvlaran/ndtrace/vec"
)

// Traverse walks the segment from start to goal through the lattice, stopping
// early when a crossed cell is an obstacle.
//
// Algorithm:
//  1. Initialize a Tracer; record the start as the first path vertex and
//     intersection, with the initial front cells and lattice corner.
//  2. If the start's cell is an obstacle: OBSTACLE_HIT, nothing else is walked.
//  3. Else if start ≈ goal: GOAL_REACHED with no crossing.
//  4. Else, until Reached: Next, record the crossing, and stop with
//     OBSTACLE_HIT when the crossing point lies in an obstacle cell.
//  5. When the loop runs out, append the exact goal point, set GoalReached,
//     and additionally set ObstacleHit if the goal's cell is an obstacle.
//
// obstacles may be nil. Options add cancellation (WithContext), a per-step
// hook (WithOnStep) and a crossing cap (WithMaxSteps).
//
// Errors:
//   - ErrEmptyPoint, ErrDimensionMismatch, ErrNonFinite for an invalid segment.
//   - ErrObstacleDimension when obstacles has another dimensionality.
//   - ErrOptionViolation for invalid options.
//   - ErrStepLimit, a context error, or the OnStep error when walking stops early.
//
// Complexity: O(S·2^A·N) time and memory, see the package documentation.
func Traverse(start, goal vec.Point, obstacles *cellset.Set, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t, err := NewTracer(start, goal)
	if err != nil {
		return nil, err
	}
	if obstacles != nil && obstacles.Dim() != t.Dim() {
		return nil, fmt.Errorf("%w: obstacles have %d, segment has %d", ErrObstacleDimension, obstacles.Dim(), t.Dim())
	}

	res := &Result{
		Path:              []vec.Point{start.Clone()},
		FrontCellsHistory: [][]vec.Cell{t.FrontCells()},
		Intersections:     []vec.Point{start.Clone()},
		LatticeHistory:    []vec.Cell{t.Lattice()},
		State:             StateStart,
	}

	if HitObstacle(start, obstacles) {
		res.ObstacleHit = true
		res.State = StateObstacleHit
		return res, nil
	}
	if vec.ApproxEqual(start, goal, StartGoalTol) {
		res.GoalReached = true
		res.State = StateGoalReached
		return res, nil
	}

	res.State = StateStepping
	for !t.Reached() {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("lattice: traversal interrupted after %d steps: %w", res.Steps, err)
		}
		if o.MaxSteps > 0 && res.Steps >= o.MaxSteps {
			return nil, fmt.Errorf("%w: %d", ErrStepLimit, o.MaxSteps)
		}

		step, err := t.Next()
		if err != nil {
			return nil, err
		}
		res.Steps++
		res.Path = append(res.Path, step.Coords)
		res.Intersections = append(res.Intersections, step.Coords.Clone())
		res.LatticeHistory = append(res.LatticeHistory, step.Lattice)
		res.FrontCellsHistory = append(res.FrontCellsHistory, step.FrontCells)

		if err := o.OnStep(step); err != nil {
			return nil, err
		}
		if HitObstacle(step.Coords, obstacles) {
			res.ObstacleHit = true
			res.State = StateObstacleHit
			return res, nil
		}
	}

	res.Path = append(res.Path, goal.Clone())
	res.GoalReached = true
	res.State = StateGoalReached
	if HitObstacle(goal, obstacles) {
		res.ObstacleHit = true
	}

	return res, nil
}
