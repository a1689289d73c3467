// Package scenario loads the ordered list of traversal cases a run works
// through.
//
// A scenario is a labelled segment (start, goal) with an optional set of
// obstacle cells. Scenarios come from a YAML file:
//
//	scenarios:
//	  - label: Horizontal
//	    start: [1, 2]
//	    goal: [5, 2]
//	  - label: Goal is obstacle
//	    start: [1, 1]
//	    goal: [3, 3]
//	    obstacles: [[3, 3]]
//
// or from Builtin, a fixed table of 2-D and 3-D cases covering integral and
// fractional endpoints, axis-aligned and diagonal rays, the cardinal
// directions, every quadrant and octant, and the obstacle edge cases.
//
// Every loaded scenario is validated: labels are non-empty and unique,
// points are non-empty and finite, and all coordinates share one dimension.
package scenario
