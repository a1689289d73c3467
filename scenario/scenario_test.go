package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ndtrace/cellset"
	"github.com/katalvlaran/ndtrace/scenario"
	"github.com/katalvlaran/ndtrace/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
scenarios:
  - label: Horizontal
    start: [1, 2]
    goal: [5, 2]
  - label: Goal is obstacle
    start: [1, 1]
    goal: [3.5, 3]
    obstacles: [[3, 3], [0, -1]]
`

// TestParse decodes integers into float points and keeps file order.
func TestParse(t *testing.T) {
	got, err := scenario.Parse([]byte(sample))
	require.NoError(t, err)

	want := []scenario.Scenario{
		{Label: "Horizontal", Start: vec.Point{1, 2}, Goal: vec.Point{5, 2}},
		{
			Label:     "Goal is obstacle",
			Start:     vec.Point{1, 1},
			Goal:      vec.Point{3.5, 3},
			Obstacles: []vec.Cell{{3, 3}, {0, -1}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, got[0].Dim())
}

// TestParse_Errors covers every rejection.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", ``, scenario.ErrNoScenarios},
		{"NoList", "scenarios: []\n", scenario.ErrNoScenarios},
		{"NoLabel", "scenarios:\n  - start: [1]\n    goal: [2]\n", scenario.ErrEmptyLabel},
		{"NoGoal", "scenarios:\n  - label: a\n    start: [1]\n", scenario.ErrEmptyPoint},
		{"Mismatch", "scenarios:\n  - label: a\n    start: [1, 2]\n    goal: [2]\n", scenario.ErrDimensionMismatch},
		{"ObstacleMismatch", "scenarios:\n  - label: a\n    start: [1, 2]\n    goal: [2, 2]\n    obstacles: [[1]]\n", scenario.ErrDimensionMismatch},
		{"NaN", "scenarios:\n  - label: a\n    start: [.nan]\n    goal: [2]\n", scenario.ErrNonFinite},
		{"Duplicate", "scenarios:\n  - label: a\n    start: [1]\n    goal: [2]\n  - label: a\n    start: [3]\n    goal: [4]\n", scenario.ErrDuplicateLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_UnknownField rejects misspelt keys.
func TestParse_UnknownField(t *testing.T) {
	_, err := scenario.Parse([]byte("scenarios:\n  - label: a\n    start: [1]\n    goal: [2]\n    obstacle: [[1]]\n"))
	assert.Error(t, err)
}

// TestLoad reads from disk and prefixes errors with the path.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	got, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scenarios: []\n"), 0o644))
	_, err = scenario.Load(bad)
	assert.ErrorIs(t, err, scenario.ErrNoScenarios)
	assert.Contains(t, err.Error(), bad)
}

// TestMarshal_RoundTrip encodes the builtin table and parses it back.
func TestMarshal_RoundTrip(t *testing.T) {
	in := scenario.Builtin()
	data, err := scenario.Marshal(in)
	require.NoError(t, err)

	out, err := scenario.Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestBuiltin checks the shape of the built-in table.
func TestBuiltin(t *testing.T) {
	list := scenario.Builtin()
	require.Len(t, list, 47)

	dims := map[int]int{}
	byLabel := map[string]scenario.Scenario{}
	for _, s := range list {
		require.NoError(t, s.Validate())
		dims[s.Dim()]++
		byLabel[s.Label] = s
	}
	assert.Equal(t, 21, dims[2])
	assert.Equal(t, 26, dims[3])

	ray, ok := byLabel["3D Ray Along Y With Obstacles"]
	require.True(t, ok)
	assert.Len(t, ray.Obstacles, 10)

	// Builtin returns a fresh copy every time.
	list[0].Start[0] = 99
	assert.NotEqual(t, 99.0, scenario.Builtin()[0].Start[0])
}

// TestObstacleSet builds a cellset of the scenario's dimension.
func TestObstacleSet(t *testing.T) {
	s := scenario.Scenario{
		Label:     "x",
		Start:     vec.Point{0, 0, 0},
		Goal:      vec.Point{1, 1, 1},
		Obstacles: []vec.Cell{{1, 1, 1}, {1, 1, 1}, {2, 0, 0}},
	}
	set, err := s.ObstacleSet()
	require.NoError(t, err)
	assert.Equal(t, 3, set.Dim())
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(vec.Cell{2, 0, 0}))

	s.Obstacles = append(s.Obstacles, vec.Cell{1})
	_, err = s.ObstacleSet()
	assert.ErrorIs(t, err, scenario.ErrDimensionMismatch)
	assert.ErrorIs(t, err, cellset.ErrDimensionMismatch)
}
