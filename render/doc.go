// Package render draws traversal results as PNG or SVG images with gonum/plot.
//
// A Frame carries what a traversal produced: the start and goal, the path,
// the front cells of every step, the intersection points, the lattice
// corners and the obstacle cells. Plot2D draws the frame projected onto two
// axes:
//
//   - grid lines at every integer coordinate;
//   - obstacles as black unit squares;
//   - front cells as translucent cyan unit squares;
//   - the path as a line, intersections as red crosses;
//   - lattice corners as purple squares;
//   - the start (green) and goal (blue) as circles.
//
// Save writes one image per projection: the plane itself for 2-D frames, the
// XY, YZ and XZ planes for higher dimensions, and the X axis against a zero
// second axis for 1-D frames.
package render
