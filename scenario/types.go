package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndtrace/cellset"
	"github.com/katalvlaran/ndtrace/vec"
)

var (
	// ErrNoScenarios indicates a file without any scenario.
	ErrNoScenarios = errors.New("scenario: no scenarios defined")

	// ErrEmptyLabel indicates a scenario without a label.
	ErrEmptyLabel = errors.New("scenario: label is empty")

	// ErrDuplicateLabel indicates two scenarios sharing a label.
	ErrDuplicateLabel = errors.New("scenario: duplicate label")

	// ErrEmptyPoint indicates a missing start or goal.
	ErrEmptyPoint = errors.New("scenario: start and goal must be non-empty")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("scenario: coordinates must be finite")

	// ErrDimensionMismatch indicates start, goal and obstacles of different dimensions.
	ErrDimensionMismatch = errors.New("scenario: dimension mismatch")
)

// Scenario is one traversal case.
type Scenario struct {
	Label     string     `yaml:"label"`
	Start     vec.Point  `yaml:"start"`
	Goal      vec.Point  `yaml:"goal"`
	Obstacles []vec.Cell `yaml:"obstacles,omitempty"`
}

// file is the on-disk document.
type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Dim returns the dimension of the start point.
func (s Scenario) Dim() int { return len(s.Start) }

// ObstacleSet builds the obstacle cells into a set of the scenario's dimension.
func (s Scenario) ObstacleSet() (*cellset.Set, error) {
	set, err := cellset.New(s.Dim(), s.Obstacles...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	return set, nil
}
