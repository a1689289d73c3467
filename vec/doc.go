// Package vec provides the small vector primitives shared by the traversal
// packages of github.com/katalvlaran/ndtrace.
//
// What:
//
//   - Point: a continuous position in N-space ([]float64).
//   - Cell: an integer lattice cell [c_i, c_i+1) per axis ([]int).
//   - Sign, floor/ceil projections onto the lattice, Euclidean norm.
//
// Points and Cells are plain slices so callers may build them with composite
// literals; every function in this package returns fresh slices and never
// mutates its arguments.
//
// Norms and element-wise comparisons are delegated to gonum's floats package.
package vec
