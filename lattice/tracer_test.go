package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndtrace/lattice"
	"github.com/katalvlaran/ndtrace/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTracer_Errors rejects malformed segments.
func TestNewTracer_Errors(t *testing.T) {
	cases := []struct {
		name        string
		start, goal vec.Point
		err         error
	}{
		{"EmptyStart", vec.Point{}, vec.Point{1}, lattice.ErrEmptyPoint},
		{"EmptyGoal", vec.Point{1}, nil, lattice.ErrEmptyPoint},
		{"Mismatch", vec.Point{1, 2}, vec.Point{1, 2, 3}, lattice.ErrDimensionMismatch},
		{"NaN", vec.Point{math.NaN(), 0}, vec.Point{1, 1}, lattice.ErrNonFinite},
		{"Inf", vec.Point{0, 0}, vec.Point{math.Inf(1), 1}, lattice.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewTracer(tc.start, tc.goal)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewTracer_NegativeDirection starts inside a cell and moves west.
func TestNewTracer_NegativeDirection(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{5.5, 2.5}, vec.Point{1.5, 2.5})
	require.NoError(t, err)

	assert.Equal(t, 2, tr.Dim())
	assert.Equal(t, vec.Cell{6, 2}, tr.Lattice(), "ceil on the moving-negative axis, floor elsewhere")
	assert.Equal(t, []vec.Cell{{-1, 0}}, tr.FrontOffsets())
	assert.Equal(t, []vec.Cell{{5, 2}}, tr.FrontCells())
	assert.Equal(t, vec.Point{5.5, 2.5}, tr.Coords())
	assert.Equal(t, 0.0, tr.Length())
	assert.False(t, tr.Reached())

	step, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, step.Axes)
	assert.Equal(t, vec.Cell{5, 2}, step.Lattice)
	assert.Equal(t, []vec.Cell{{4, 2}}, step.FrontCells)
	assert.InDelta(t, 0.5, step.Length, 1e-12)
	assert.InDeltaSlice(t, []float64{5, 2.5}, []float64(step.Coords), 1e-12)
}

// TestNewTracer_StartOnBoundary skips the zero-length self-crossing and
// exposes both cells on a still, grid-aligned axis.
func TestNewTracer_StartOnBoundary(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{1, 2}, vec.Point{5, 2})
	require.NoError(t, err)

	assert.Equal(t, []vec.Cell{{0, -1}, {0, 0}}, tr.FrontOffsets())
	assert.Equal(t, []vec.Cell{{1, 1}, {1, 2}}, tr.FrontCells())

	step, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, step.Index)
	assert.Equal(t, []int{0}, step.Axes)
	assert.InDelta(t, 1.0, step.Length, 1e-12, "first crossing is one full cell away")
	assert.InDeltaSlice(t, []float64{2, 2}, []float64(step.Coords), 1e-12)
	assert.Equal(t, []vec.Cell{{2, 1}, {2, 2}}, step.FrontCells)
}

// TestNext_DiagonalTie advances both axes at every crossing.
func TestNext_DiagonalTie(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{1, 1}, vec.Point{5, 5})
	require.NoError(t, err)

	var lengths []float64
	for !tr.Reached() {
		step, err := tr.Next()
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, step.Axes)
		assert.Len(t, step.FrontCells, 1)
		lengths = append(lengths, step.Length)
	}
	require.Len(t, lengths, 3)
	for i, l := range lengths {
		assert.InDelta(t, float64(i+1)*math.Sqrt2, l, 1e-9)
	}
	assert.Equal(t, vec.Cell{4, 4}, tr.Lattice())
	assert.Equal(t, 3, tr.StepIndex())
}

// TestNext_AlternatingAxes walks a skewed segment whose crossings alternate.
func TestNext_AlternatingAxes(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{1.2, 1.8}, vec.Point{5.7, 6.3})
	require.NoError(t, err)

	var axes [][]int
	var corners []vec.Cell
	for !tr.Reached() {
		step, err := tr.Next()
		require.NoError(t, err)
		axes = append(axes, step.Axes)
		corners = append(corners, step.Lattice)
	}
	assert.Equal(t, [][]int{{1}, {0}, {1}, {0}, {1}, {0}, {1}, {0}, {1}}, axes)
	assert.Equal(t, []vec.Cell{
		{1, 2}, {2, 2}, {2, 3}, {3, 3}, {3, 4}, {4, 4}, {4, 5}, {5, 5}, {5, 6},
	}, corners)
}

// TestNext_AfterReached refuses to advance a finished tracer.
func TestNext_AfterReached(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{0.5}, vec.Point{1.5})
	require.NoError(t, err)

	_, err = tr.Next()
	require.NoError(t, err)
	require.True(t, tr.Reached())

	snap, err := tr.Next()
	assert.ErrorIs(t, err, lattice.ErrAlreadyReached)
	assert.Equal(t, vec.Cell{1}, snap.Lattice)
	assert.Equal(t, 1, snap.Index)
	assert.True(t, snap.Reached)
}

// TestZeroLengthSegment is reached at once and keeps the start as coordinates.
func TestZeroLengthSegment(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{2, 2}, vec.Point{2, 2})
	require.NoError(t, err)

	assert.True(t, tr.Reached())
	assert.Equal(t, vec.Point{2, 2}, tr.Coords())
	assert.Equal(t, []vec.Cell{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, tr.FrontCells())

	snap := tr.Snapshot()
	assert.Equal(t, 0, snap.Index)
	assert.Empty(t, snap.Axes)
	assert.True(t, snap.Reached)
}

// TestTracer_LatticeMatchesCoords checks that the corner always agrees with
// the continuous position after every crossing.
func TestTracer_LatticeMatchesCoords(t *testing.T) {
	tr, err := lattice.NewTracer(vec.Point{0.3, 4.9, 2.2}, vec.Point{6.1, -2.4, 2.7})
	require.NoError(t, err)
	delta := []float64{6.1 - 0.3, -2.4 - 4.9, 2.7 - 2.2}

	for !tr.Reached() {
		step, err := tr.Next()
		require.NoError(t, err)
		for i, c := range step.Coords {
			lo, hi := float64(step.Lattice[i]), float64(step.Lattice[i])
			if delta[i] >= 0 {
				hi++
			} else {
				lo--
			}
			assert.GreaterOrEqual(t, c, lo-1e-9, "axis %d at step %d", i, step.Index)
			assert.LessOrEqual(t, c, hi+1e-9, "axis %d at step %d", i, step.Index)
		}
	}
}

// TestNext_SubEpsilonMotion pins the crossings of an axis whose motion is
// non-zero but below ZeroEps or the degenerate-distance threshold. A tiny
// negative delta and a tiny positive delta from an integral start both cross
// that axis at length zero; a tiny positive delta below ZeroEps keeps it still.
func TestNext_SubEpsilonMotion(t *testing.T) {
	cases := []struct {
		name    string
		dy      float64
		axes    [][]int
		lattice []vec.Cell
		front0  int
		zeroLen bool
	}{
		{
			name:    "PositiveBelowZeroEps",
			dy:      5e-11,
			axes:    [][]int{{0}, {0}, {0}},
			lattice: []vec.Cell{{1, 2}, {2, 2}, {3, 2}, {4, 2}},
			front0:  2,
		},
		{
			name:    "NegativeBelowZeroEps",
			dy:      -5e-11,
			axes:    [][]int{{1}, {0}, {0}, {0}},
			lattice: []vec.Cell{{1, 2}, {1, 1}, {2, 1}, {3, 1}, {4, 1}},
			front0:  2,
			zeroLen: true,
		},
		{
			name:    "PositiveBelowDegenerate",
			dy:      5e-10,
			axes:    [][]int{{1}, {0}, {0}, {0}},
			lattice: []vec.Cell{{1, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 3}},
			front0:  1,
			zeroLen: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := lattice.NewTracer(vec.Point{1, 2}, vec.Point{5, 2 + tc.dy})
			require.NoError(t, err)
			assert.Len(t, tr.FrontCells(), tc.front0)

			axes := [][]int{}
			history := []vec.Cell{tr.Lattice()}
			var lengths []float64
			for !tr.Reached() {
				step, err := tr.Next()
				require.NoError(t, err)
				axes = append(axes, step.Axes)
				history = append(history, step.Lattice)
				lengths = append(lengths, step.Length)
			}
			assert.Equal(t, tc.axes, axes)
			assert.Equal(t, tc.lattice, history)

			require.NotEmpty(t, lengths)
			if tc.zeroLen {
				assert.InDelta(t, 0.0, lengths[0], 1e-12, "still axis crosses at length zero")
			} else {
				assert.InDelta(t, 1.0, lengths[0], 1e-12)
			}
			for i := 1; i < len(lengths); i++ {
				assert.GreaterOrEqual(t, lengths[i], lengths[i-1])
			}
		})
	}
}
