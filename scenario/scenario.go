package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Validate checks the scenario on its own.
func (s Scenario) Validate() error {
	if s.Label == "" {
		return ErrEmptyLabel
	}
	if len(s.Start) == 0 || len(s.Goal) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyPoint, s.Label)
	}
	if len(s.Start) != len(s.Goal) {
		return fmt.Errorf("%w: %q start has %d axes, goal has %d",
			ErrDimensionMismatch, s.Label, len(s.Start), len(s.Goal))
	}
	if !s.Start.Finite() || !s.Goal.Finite() {
		return fmt.Errorf("%w: %q", ErrNonFinite, s.Label)
	}
	for i, c := range s.Obstacles {
		if len(c) != len(s.Start) {
			return fmt.Errorf("%w: %q obstacle %d has %d axes, want %d",
				ErrDimensionMismatch, s.Label, i, len(c), len(s.Start))
		}
	}

	return nil
}

// Load reads and validates a YAML scenario file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return list, nil
}

// Parse decodes and validates a YAML scenario document. Unknown fields are
// rejected so that a misspelt key does not silently drop obstacles.
func Parse(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	seen := make(map[string]int, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		if j, dup := seen[s.Label]; dup {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateLabel, s.Label, j, i)
		}
		seen[s.Label] = i
	}

	return f.Scenarios, nil
}

// Marshal encodes scenarios back to the YAML document format.
func Marshal(list []Scenario) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file{Scenarios: list}); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}

	return buf.Bytes(), nil
}
