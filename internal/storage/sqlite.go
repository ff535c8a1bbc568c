// Package storage provides SQLite-based persistence for search runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/robopath/gridgraph"
)

// ErrRunNotFound is returned by GetRun for an unknown id.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded search: the grid it ran on and what it found.
// TotalCost is meaningful only when Found is true.
type Run struct {
	ID        int64
	Size      int
	Start     gridgraph.Coordinate
	End       gridgraph.Coordinate
	Seed      int64
	Costs     [][]int64
	Found     bool
	TotalCost int64
	Steps     int
	Corners   []gridgraph.Coordinate
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			size INTEGER NOT NULL,
			start_row INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			end_row INTEGER NOT NULL,
			end_col INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			costs TEXT NOT NULL,
			found INTEGER NOT NULL,
			total_cost INTEGER,
			steps INTEGER NOT NULL DEFAULT 0,
			corners TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	costs, err := yaml.Marshal(r.Costs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode costs: %w", err)
	}
	pairs := make([][2]int, len(r.Corners))
	for i, c := range r.Corners {
		pairs[i] = [2]int{c.Row, c.Col}
	}
	corners, err := yaml.Marshal(pairs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode corners: %w", err)
	}

	var total sql.NullInt64
	if r.Found {
		total = sql.NullInt64{Int64: r.TotalCost, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (size, start_row, start_col, end_row, end_col, seed, costs, found, total_cost, steps, corners)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Size, r.Start.Row, r.Start.Col, r.End.Row, r.End.Col, r.Seed,
		string(costs), r.Found, total, r.Steps, string(corners),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectRun = `SELECT id, size, start_row, start_col, end_row, end_col, seed, costs, found, total_cost, steps, corners, created_at
	FROM runs`

// RecentRuns retrieves the newest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(selectRun+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GetRun retrieves a single run by id. Returns ErrRunNotFound if absent.
func (s *Store) GetRun(id int64) (Run, error) {
	row := s.db.QueryRow(selectRun+` WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: id=%d", ErrRunNotFound, id)
	}
	return r, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r              Run
		costs, corners string
		total          sql.NullInt64
		createdAt      any
	)
	err := sc.Scan(&r.ID, &r.Size, &r.Start.Row, &r.Start.Col, &r.End.Row, &r.End.Col,
		&r.Seed, &costs, &r.Found, &total, &r.Steps, &corners, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	if err := yaml.Unmarshal([]byte(costs), &r.Costs); err != nil {
		return Run{}, fmt.Errorf("storage: cannot decode costs of run %d: %w", r.ID, err)
	}
	var pairs [][2]int
	if err := yaml.Unmarshal([]byte(corners), &pairs); err != nil {
		return Run{}, fmt.Errorf("storage: cannot decode corners of run %d: %w", r.ID, err)
	}
	for _, p := range pairs {
		r.Corners = append(r.Corners, gridgraph.At(p[0], p[1]))
	}
	if total.Valid {
		r.TotalCost = total.Int64
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}
