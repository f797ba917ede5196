package corridordb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

// Run is the persisted metadata of one clustering run.
type Run struct {
	RunID         string
	InputFile     string
	Params        corridor.Params
	LineCount     int
	SegmentCount  int
	CorridorCount int
	NoiseCount    int
	CreatedAt     time.Time
}

// SaveResult stores a completed run with its corridors and per-segment
// assignments in a single transaction and returns the generated run id.
func (db *DB) SaveResult(inputFile string, p corridor.Params, lineCount int, result *corridor.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(run_id, input_file, max_dist, min_density, max_angle, segment_size,
		 line_count, segment_count, corridor_count, noise_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, inputFile, p.MaxDist, p.MinDensity, p.MaxAngle, p.SegmentSize,
		lineCount, len(result.Segments), len(result.Corridors), result.NoiseCount(),
		time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	corridorStmt, err := tx.Prepare(`INSERT INTO corridors
		(run_id, corridor_id, cluster_id, weight, segments, start_x, start_y, end_x, end_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare corridor insert: %w", err)
	}
	defer corridorStmt.Close()
	for _, c := range result.Corridors {
		r := c.Representative
		if _, err := corridorStmt.Exec(runID, c.ID, c.ClusterID, c.Weight, c.MemberCount,
			r.StartX, r.StartY, r.EndX, r.EndY); err != nil {
			return "", fmt.Errorf("insert corridor %d: %w", c.ID, err)
		}
	}

	assignStmt, err := tx.Prepare(`INSERT INTO segment_assignments
		(run_id, line_id, segment_index, corridor_id)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare assignment insert: %w", err)
	}
	defer assignStmt.Close()
	for _, a := range result.Assignments {
		if _, err := assignStmt.Exec(runID, a.LineID, a.SegmentIndex, a.CorridorID); err != nil {
			return "", fmt.Errorf("insert assignment %s:%d: %w", a.LineID, a.SegmentIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// GetRun loads a run's metadata by id.
func (db *DB) GetRun(runID string) (*Run, error) {
	row := db.QueryRow(`SELECT run_id, input_file, max_dist, min_density, max_angle,
		segment_size, line_count, segment_count, corridor_count, noise_count, created_at
		FROM runs WHERE run_id = ?`, runID)

	var r Run
	var created int64
	err := row.Scan(&r.RunID, &r.InputFile, &r.Params.MaxDist, &r.Params.MinDensity,
		&r.Params.MaxAngle, &r.Params.SegmentSize, &r.LineCount, &r.SegmentCount,
		&r.CorridorCount, &r.NoiseCount, &created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}
	r.CreatedAt = time.Unix(created, 0).UTC()
	return &r, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`SELECT run_id, input_file, max_dist, min_density, max_angle,
		segment_size, line_count, segment_count, corridor_count, noise_count, created_at
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.RunID, &r.InputFile, &r.Params.MaxDist, &r.Params.MinDensity,
			&r.Params.MaxAngle, &r.Params.SegmentSize, &r.LineCount, &r.SegmentCount,
			&r.CorridorCount, &r.NoiseCount, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.Unix(created, 0).UTC()
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetCorridors loads a run's corridors in corridor id order.
func (db *DB) GetCorridors(runID string) ([]corridor.Corridor, error) {
	rows, err := db.Query(`SELECT corridor_id, cluster_id, weight, segments,
		start_x, start_y, end_x, end_y
		FROM corridors WHERE run_id = ? ORDER BY corridor_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("load corridors: %w", err)
	}
	defer rows.Close()

	var corridors []corridor.Corridor
	for rows.Next() {
		var c corridor.Corridor
		if err := rows.Scan(&c.ID, &c.ClusterID, &c.Weight, &c.MemberCount,
			&c.Representative.StartX, &c.Representative.StartY,
			&c.Representative.EndX, &c.Representative.EndY); err != nil {
			return nil, fmt.Errorf("scan corridor: %w", err)
		}
		corridors = append(corridors, c)
	}
	return corridors, rows.Err()
}

// GetAssignments loads a run's per-segment assignments in (line_id,
// segment_index) order.
func (db *DB) GetAssignments(runID string) ([]corridor.Assignment, error) {
	rows, err := db.Query(`SELECT line_id, segment_index, corridor_id
		FROM segment_assignments WHERE run_id = ?
		ORDER BY line_id, segment_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	defer rows.Close()

	var assignments []corridor.Assignment
	for rows.Next() {
		var a corridor.Assignment
		if err := rows.Scan(&a.LineID, &a.SegmentIndex, &a.CorridorID); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
