package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/ndtrace/cellset"
	"github.com/katalvlaran/ndtrace/lattice"
	"github.com/katalvlaran/ndtrace/vec"
)

// ExampleTraverse walks a diagonal whose goal cell is blocked. The goal is
// still reached, and the obstacle is reported as well.
func ExampleTraverse() {
	obstacles := cellset.MustNew(2, vec.Cell{3, 3})

	res, err := lattice.Traverse(vec.Point{1, 1}, vec.Point{3, 3}, obstacles)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println(res.State, res.ObstacleHit, res.GoalReached)
	// Output:
	// [(1,1) (2,2) (3,3)]
	// GOAL_REACHED true true
}

// ExampleTracer_Next steps a westbound segment one crossing at a time.
func ExampleTracer_Next() {
	tr, err := lattice.NewTracer(vec.Point{5.5, 2.5}, vec.Point{1.5, 2.5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for !tr.Reached() {
		s, _ := tr.Next()
		fmt.Printf("step %d: corner %v front %v at %v\n", s.Index, s.Lattice, s.FrontCells, s.Coords)
	}
	// Output:
	// step 1: corner (5,2) front [(4,2)] at (5,2.5)
	// step 2: corner (4,2) front [(3,2)] at (4,2.5)
	// step 3: corner (3,2) front [(2,2)] at (3,2.5)
	// step 4: corner (2,2) front [(1,2)] at (2,2.5)
}

// ExampleTracer_FrontCells shows a ray running inside two grid planes of a
// 3-D lattice: the x and z cells are both two-valued, so four cells touch it.
func ExampleTracer_FrontCells() {
	tr, _ := lattice.NewTracer(vec.Point{2, 0, 3}, vec.Point{2, 5, 3})

	fmt.Println(tr.FrontOffsets())
	fmt.Println(tr.FrontCells())
	// Output:
	// [(-1,0,-1) (-1,0,0) (0,0,-1) (0,0,0)]
	// [(1,0,2) (1,0,3) (2,0,2) (2,0,3)]
}
