// Package corridordb persists corridor clustering runs in SQLite so
// results can be compared across parameter sweeps.
package corridordb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection used for run persistence.
type DB struct {
	*sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	input_file TEXT NOT NULL,
	max_dist DOUBLE NOT NULL,
	min_density DOUBLE NOT NULL,
	max_angle DOUBLE NOT NULL,
	segment_size DOUBLE NOT NULL,
	line_count INTEGER NOT NULL,
	segment_count INTEGER NOT NULL,
	corridor_count INTEGER NOT NULL,
	noise_count INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS corridors (
	run_id TEXT NOT NULL,
	corridor_id INTEGER NOT NULL,
	cluster_id INTEGER NOT NULL,
	weight DOUBLE NOT NULL,
	segments INTEGER NOT NULL,
	start_x DOUBLE NOT NULL,
	start_y DOUBLE NOT NULL,
	end_x DOUBLE NOT NULL,
	end_y DOUBLE NOT NULL,
	PRIMARY KEY (run_id, corridor_id),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
CREATE TABLE IF NOT EXISTS segment_assignments (
	run_id TEXT NOT NULL,
	line_id TEXT NOT NULL,
	segment_index INTEGER NOT NULL,
	corridor_id INTEGER NOT NULL,
	PRIMARY KEY (run_id, line_id, segment_index),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent; the write
	// volume here never needs more.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{db}, nil
}
