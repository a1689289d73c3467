package runstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/ndtrace/lattice"
	"github.com/katalvlaran/ndtrace/vec"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no run has the requested ID.
var ErrNotFound = errors.New("runstore: run not found")

// Run is one archived traversal.
type Run struct {
	RunID          string      `json:"run_id"`
	Label          string      `json:"label"`
	Dim            int         `json:"dimension"`
	Start          vec.Point   `json:"start"`
	Goal           vec.Point   `json:"goal"`
	Obstacles      []vec.Cell  `json:"obstacles,omitempty"`
	ObstacleHit    bool        `json:"obstacle_hit"`
	GoalReached    bool        `json:"goal_reached"`
	State          string      `json:"state"`
	Steps          int         `json:"steps"`
	PathLength     float64     `json:"path_length"`
	Path           []vec.Point `json:"path"`
	LatticeHistory []vec.Cell  `json:"lattice_history"`
	CreatedAt      int64       `json:"created_at"`
}

// RunFromResult captures a traversal result for archiving. PathLength is the
// polyline length of the recorded path.
func RunFromResult(label string, start, goal vec.Point, obstacles []vec.Cell, res *lattice.Result) *Run {
	length := 0.0
	for i := 1; i < len(res.Path); i++ {
		length += vec.Norm(res.Path[i].Sub(res.Path[i-1]))
	}

	return &Run{
		Label:          label,
		Dim:            len(start),
		Start:          start,
		Goal:           goal,
		Obstacles:      obstacles,
		ObstacleHit:    res.ObstacleHit,
		GoalReached:    res.GoalReached,
		State:          res.State.String(),
		Steps:          res.Steps,
		PathLength:     length,
		Path:           res.Path,
		LatticeHistory: res.LatticeHistory,
	}
}

// Store is a run archive backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path and migrates it to the
// latest schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", path, err)
	}
	// SQLite allows one writer; serialize access from concurrent workers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists run. If RunID is empty a UUID is generated; a zero
// CreatedAt is stamped with the current time.
func (s *Store) Insert(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}

	startJSON, err := json.Marshal(run.Start)
	if err != nil {
		return fmt.Errorf("runstore: encode start: %w", err)
	}
	goalJSON, err := json.Marshal(run.Goal)
	if err != nil {
		return fmt.Errorf("runstore: encode goal: %w", err)
	}
	var obstaclesJSON interface{}
	if len(run.Obstacles) > 0 {
		b, err := json.Marshal(run.Obstacles)
		if err != nil {
			return fmt.Errorf("runstore: encode obstacles: %w", err)
		}
		obstaclesJSON = string(b)
	}
	pathJSON, err := json.Marshal(run.Path)
	if err != nil {
		return fmt.Errorf("runstore: encode path: %w", err)
	}
	latticeJSON, err := json.Marshal(run.LatticeHistory)
	if err != nil {
		return fmt.Errorf("runstore: encode lattice history: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (
			run_id, label, dimension, start_json, goal_json, obstacles_json,
			obstacle_hit, goal_reached, state, steps, path_length,
			path_json, lattice_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Label, run.Dim, string(startJSON), string(goalJSON), obstaclesJSON,
		run.ObstacleHit, run.GoalReached, run.State, run.Steps, run.PathLength,
		string(pathJSON), string(latticeJSON), run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("runstore: insert run %s: %w", run.RunID, err)
	}

	return nil
}

const selectRuns = `
	SELECT run_id, label, dimension, start_json, goal_json, obstacles_json,
	       obstacle_hit, goal_reached, state, steps, path_length,
	       path_json, lattice_json, created_at
	FROM runs`

// Get returns the run with the given ID, or ErrNotFound.
func (s *Store) Get(runID string) (*Run, error) {
	row := s.db.QueryRow(selectRuns+` WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}

	return r, err
}

// List returns up to limit runs, newest first. limit <= 0 returns all runs.
func (s *Store) List(limit int) ([]*Run, error) {
	query := selectRuns + ` ORDER BY created_at DESC, rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("runstore: query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// ListByLabel returns every run of one scenario, newest first.
func (s *Store) ListByLabel(label string) ([]*Run, error) {
	rows, err := s.db.Query(selectRuns+` WHERE label = ? ORDER BY created_at DESC, rowid DESC`, label)
	if err != nil {
		return nil, fmt.Errorf("runstore: query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Delete removes a run by ID, or returns ErrNotFound.
func (s *Store) Delete(runID string) error {
	res, err := s.db.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("runstore: delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("runstore: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, runID)
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(sc scanner) (*Run, error) {
	var r Run
	var startJSON, goalJSON, pathJSON, latJSON string
	var obstaclesJSON sql.NullString
	err := sc.Scan(
		&r.RunID, &r.Label, &r.Dim, &startJSON, &goalJSON, &obstaclesJSON,
		&r.ObstacleHit, &r.GoalReached, &r.State, &r.Steps, &r.PathLength,
		&pathJSON, &latJSON, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("runstore: scan run: %w", err)
	}

	if err := json.Unmarshal([]byte(startJSON), &r.Start); err != nil {
		return nil, fmt.Errorf("runstore: decode start of %s: %w", r.RunID, err)
	}
	if err := json.Unmarshal([]byte(goalJSON), &r.Goal); err != nil {
		return nil, fmt.Errorf("runstore: decode goal of %s: %w", r.RunID, err)
	}
	if obstaclesJSON.Valid {
		if err := json.Unmarshal([]byte(obstaclesJSON.String), &r.Obstacles); err != nil {
			return nil, fmt.Errorf("runstore: decode obstacles of %s: %w", r.RunID, err)
		}
	}
	if err := json.Unmarshal([]byte(pathJSON), &r.Path); err != nil {
		return nil, fmt.Errorf("runstore: decode path of %s: %w", r.RunID, err)
	}
	if err := json.Unmarshal([]byte(latJSON), &r.LatticeHistory); err != nil {
		return nil, fmt.Errorf("runstore: decode lattice history of %s: %w", r.RunID, err)
	}

	return &r, nil
}
