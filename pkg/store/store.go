// Package store persists rank runs to a local SQLite database so results
// can be compared across invocations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
)

// Methods stored in the ranks table.
const (
	MethodSample  = "sample"
	MethodIterate = "iterate"
)

// Run is one persisted computation.
type Run struct {
	ID         int64
	Source     string
	Damping    float64
	Samples    int
	Threshold  float64
	Iterations int
	Pages      int
	CreatedAt  time.Time
}

// RunStore wraps the SQLite connection holding run history.
type RunStore struct {
	db     *sql.DB
	dbPath string
}

// DefaultDir returns the default database directory under the XDG data home.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, "pagerank")
}

// Open opens or creates the run database in the given directory.
func Open(dbDir string) (*RunStore, error) {
	if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}
	dbPath := filepath.Join(dbDir, "pagerank.db")
	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	s := &RunStore{db: db, dbPath: dbPath}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

func (s *RunStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		damping REAL NOT NULL,
		samples INTEGER NOT NULL,
		threshold REAL NOT NULL,
		iterations INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ranks (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		method TEXT NOT NULL,
		page TEXT NOT NULL,
		rank REAL NOT NULL,
		UNIQUE(run_id, method, page)
	);

	CREATE INDEX IF NOT EXISTS idx_ranks_run ON ranks(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun records one computation together with both rank maps.
func (s *RunStore) SaveRun(ctx context.Context, run Run, sampled, iterated pagerank.RankMap) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, damping, samples, threshold, iterations, pages)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Source, run.Damping, run.Samples, run.Threshold, run.Iterations, run.Pages,
	)
	if err != nil {
		return 0, fmt.Errorf("could not insert run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	for method, ranks := range map[string]pagerank.RankMap{
		MethodSample:  sampled,
		MethodIterate: iterated,
	} {
		for page, rank := range ranks {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO ranks (run_id, method, page, rank) VALUES (?, ?, ?, ?)`,
				id, method, page, rank,
			); err != nil {
				return 0, fmt.Errorf("could not insert rank for %s: %w", page, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("could not commit run: %w", err)
	}
	return id, nil
}

// Runs lists all persisted runs, newest first.
func (s *RunStore) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, damping, samples, threshold, iterations, pages, created_at
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.Source, &run.Damping, &run.Samples,
			&run.Threshold, &run.Iterations, &run.Pages, &run.CreatedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Ranks loads one rank map of a persisted run.
func (s *RunStore) Ranks(ctx context.Context, runID int64, method string) (pagerank.RankMap, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page, rank FROM ranks WHERE run_id = ? AND method = ?`, runID, method)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ranks := make(pagerank.RankMap)
	for rows.Next() {
		var page string
		var rank float64
		if err := rows.Scan(&page, &rank); err != nil {
			return nil, err
		}
		ranks[page] = rank
	}
	return ranks, rows.Err()
}
