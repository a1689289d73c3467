// Package ndtrace walks straight line segments through an N-dimensional
// unit lattice and reports every cell the segment touches on the way.
//
// 🚀 What is ndtrace?
//
//	A small, dimension-agnostic toolkit that brings together:
//		• Vectors & cells: real points, integer cells, directed floor/ceil
//		• Cell sets: sparse N-D obstacle storage, face/corner connectivity
//		• Lattice traversal: exact boundary crossings with multi-axis ties
//		• Front cells: every cell the segment brushes, including both sides
//		  of a grid plane the segment runs inside
//		• Obstacle checks: stop at the first crossing inside a blocked cell
//		• Scenarios, plots & archives: YAML cases, gonum/plot images, SQLite runs
//
// ✨ Why ndtrace?
//
//   - Any dimension – the same code walks 1-D lines and 8-D hypercubes
//   - Drift-free – crossing distances come from crossing counts, not sums
//   - Tie-exact – diagonal corners advance every tied axis in one step
//   - Observable – step hooks, context cancellation and step caps
//
// Packages:
//
//	vec/          Point, Cell and the floor/ceil/norm helpers
//	cellset/      obstacle sets and N-D connected components
//	lattice/      Tracer, Traverse, front cells and the obstacle classifier
//	scenario/     YAML scenario files and the built-in case table
//	render/       PNG plots of a traversal and its 2-D projections
//	runstore/     SQLite archive of traversal runs
//	config/       JSON run configuration
//	cmd/ndtrace   command line driver
//
// Quick ASCII example, a segment from (0.5,0.5) to (2.5,1.5):
//
//	  +---+---+---+
//	1 |   | ..|.●G|
//	  +---+-.-+---+
//	0 |S●.|.  |   |
//	  +---+---+---+
//	    0   1   2
//
// touches cells (0,0), (1,0), (1,1) and (2,1).
//
//	go get github.com/katalvlaran/ndtrace
package ndtrace
