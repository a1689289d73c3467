// Package config holds the run configuration of the ndtrace command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// maxFileSize caps the size of a configuration file.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// RunConfig configures one ndtrace invocation. Every field is optional; the
// Get* methods supply defaults for omitted values, so partial files are safe.
type RunConfig struct {
	// Scenarios is a YAML scenario file. Empty selects the built-in table.
	Scenarios *string `json:"scenarios,omitempty"`

	// OutputDir receives rendered plots.
	OutputDir *string `json:"output_dir,omitempty"`

	// Database is the SQLite run archive. Empty disables archiving.
	Database *string `json:"database,omitempty"`

	Workers   *int     `json:"workers,omitempty"`
	Render    *bool    `json:"render,omitempty"`
	ImageSize *float64 `json:"image_size,omitempty"` // points
	MaxSteps  *int     `json:"max_steps,omitempty"`
	Timeout   *string  `json:"timeout,omitempty"` // duration string like "30s"
}

// Empty returns a RunConfig with every field unset.
func Empty() *RunConfig {
	return &RunConfig{}
}

// Load reads a RunConfig from a JSON file. The file must have a .json
// extension and be at most 1MB.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config: file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: stat file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config: file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse JSON: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *RunConfig) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *RunConfig) validate() error {
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", *c.Workers)
	}
	if c.ImageSize != nil && *c.ImageSize <= 0 {
		return fmt.Errorf("image_size must be positive, got %g", *c.ImageSize)
	}
	if c.MaxSteps != nil && *c.MaxSteps < 0 {
		return fmt.Errorf("max_steps cannot be negative, got %d", *c.MaxSteps)
	}
	if c.Timeout != nil && *c.Timeout != "" {
		d, err := time.ParseDuration(*c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", *c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("timeout cannot be negative, got %s", d)
		}
	}

	return nil
}

// GetScenarios returns the scenario file, or "" for the built-in table.
func (c *RunConfig) GetScenarios() string {
	if c.Scenarios == nil {
		return ""
	}
	return *c.Scenarios
}

// GetOutputDir returns the plot directory or the default "plots".
func (c *RunConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "plots"
	}
	return *c.OutputDir
}

// GetDatabase returns the archive path, or "" when archiving is off.
func (c *RunConfig) GetDatabase() string {
	if c.Database == nil {
		return ""
	}
	return *c.Database
}

// GetWorkers returns the worker count, or GOMAXPROCS when unset or 0.
func (c *RunConfig) GetWorkers() int {
	if c.Workers == nil || *c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return *c.Workers
}

// GetRender returns whether plots are drawn; default false.
func (c *RunConfig) GetRender() bool {
	if c.Render == nil {
		return false
	}
	return *c.Render
}

// GetImageSize returns the image side in points; default 432 (6 inches).
func (c *RunConfig) GetImageSize() float64 {
	if c.ImageSize == nil {
		return 432
	}
	return *c.ImageSize
}

// GetMaxSteps returns the per-traversal crossing cap; default 0 (unlimited).
func (c *RunConfig) GetMaxSteps() int {
	if c.MaxSteps == nil {
		return 0
	}
	return *c.MaxSteps
}

// GetTimeout returns the whole-run timeout; default 0 (none).
func (c *RunConfig) GetTimeout() time.Duration {
	if c.Timeout == nil || *c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(*c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
