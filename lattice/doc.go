// Package lattice walks a straight segment through the unit-hypercube grid of
// N-dimensional space and reports every lattice cell the segment crosses.
//
// 🚀 What is lattice traversal?
//
//	Given a start point x₀ and a goal x_f with real coordinates, the segment
//	x(s) = x₀ + s·Δx, s ∈ [0,1], crosses the hyperplanes x_i = integer in a
//	well-defined order. Walking those crossings one at a time yields the
//	sequence of lattice cells the segment visits. This generalizes
//	Bresenham-style line rasterization and Amanatides–Woo voxel traversal to
//	any dimensionality with floating-point endpoints.
//
// ✨ Key features:
//   - arbitrary dimensionality N ≥ 1
//   - exact multi-axis ties: when several axes cross a boundary at the same
//     parametric distance they all advance together, so diagonal motion steps
//     straight from corner to corner
//   - front cells: every neighbouring cell the traversal boundary touches,
//     including both sides of a grid plane the segment runs inside of, so a
//     ray sliding along a wall cannot tunnel past an obstacle
//   - obstacle short-circuiting against a cellset.Set
//   - step-by-step driving through Tracer.Next for visualizers and debuggers
//
// ⚙️ Usage:
//
//	obstacles := cellset.MustNew(2, vec.Cell{3, 3})
//	res, err := lattice.Traverse(vec.Point{1, 1}, vec.Point{5, 5}, obstacles)
//	if err != nil {
//	  // ErrEmptyPoint, ErrDimensionMismatch, ErrNonFinite, ...
//	}
//	fmt.Println(res.LatticeHistory, res.ObstacleHit, res.GoalReached)
//
// Parametrization:
//
//	Distances along the segment are parametric: 0 at the start, 1 at the goal.
//	For every axis the tracer keeps the parametric distance to the next
//	unvisited boundary crossing; the run is complete once the smallest of those
//	distances reaches 1.
//
// Tolerances, part of the observable behaviour:
//
//   - ZeroEps     = 1e-10: an axis with |Δx_i| below this never crosses.
//   - BoundaryEps = 1e-9:  a start lying on a boundary skips the zero-length
//     self-crossing and reports the next one.
//   - CellBias    = 1e-8:  points are nudged upward before flooring when
//     classifying the containing cell.
//
// Concurrency:
//
//	A Tracer is owned by a single goroutine. Independent traversals share no
//	state and can run in parallel without synchronization.
//
// Complexity:
//
//   - Time:   O(S·N + S·2^A·N), S = number of crossings (≤ Σ|Δx_i| + N),
//     A = number of ambiguous axes.
//   - Memory: O(S·2^A·N) for the recorded histories.
package lattice
