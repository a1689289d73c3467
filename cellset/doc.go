// Package cellset stores sparse sets of N-dimensional lattice cells and
// answers adjacency questions about them.
//
// What:
//
//   - Set holds integer cells of one fixed dimensionality N (obstacles,
//     visited cells, front cells) with O(1) membership tests.
//   - Connectivity selects the neighbourhood used for adjacency:
//     Face (2N neighbours sharing a facet, the N-D Conn4) or
//     Corner (3^N − 1 neighbours sharing at least a vertex, the N-D Conn8).
//   - ConnectedComponents and Connected run a breadth-first search over the
//     member cells.
//
// Why:
//
//   - Obstacle classification: a traversal tests every crossed cell against
//     an obstacle Set.
//   - Coverage checks: the cells reported by a traversal must form one
//     Corner-connected chain from the start cell to the goal cell.
//
// Complexity:
//
//   - Add, Contains:         O(N) (key encoding).
//   - ConnectedComponents:   O(|S|·3^N·N) with Corner, O(|S|·N²) with Face.
//
// Errors:
//
//   - ErrBadDimension:      dimensionality must be at least 1.
//   - ErrDimensionMismatch: a cell's length differs from the set's dimension.
package cellset
