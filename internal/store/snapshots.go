package store

import (
	"database/sql"
	"time"

	"github.com/kanit-labs/fingerfit/internal/history"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, version) VALUES (?, ?)",
		time.Now().UTC().Format(time.RFC3339), version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetSnapshot returns a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, version FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertDailyProgress stores one aggregated day under a snapshot.
func (db *DB) InsertDailyProgress(snapshotID int64, e history.Entry, trend history.Trend) error {
	_, err := db.conn.Exec(
		`INSERT INTO daily_progress
		(snapshot_id, date, event_count, sets_done, progress_pct, trend)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snapshotID, e.Date.Format("2006-01-02"), e.EventCount, e.SetsDone, e.ProgressPct, trend.String(),
	)
	return err
}

// GetDailyProgress returns a snapshot's day rows in date order.
func (db *DB) GetDailyProgress(snapshotID int64) ([]DayRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, snapshot_id, date, event_count, sets_done, progress_pct, trend
		 FROM daily_progress WHERE snapshot_id = ? ORDER BY date`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []DayRow
	for rows.Next() {
		var d DayRow
		if err := rows.Scan(&d.ID, &d.SnapshotID, &d.Date, &d.EventCount, &d.SetsDone, &d.ProgressPct, &d.Trend); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// InsertMetric stores one summary metric under a snapshot.
func (db *DB) InsertMetric(snapshotID int64, name string, value float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO snapshot_metrics (snapshot_id, name, value) VALUES (?, ?, ?)",
		snapshotID, name, value,
	)
	return err
}

// GetMetrics returns all summary metrics for a snapshot.
func (db *DB) GetMetrics(snapshotID int64) ([]Metric, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, name, value FROM snapshot_metrics WHERE snapshot_id = ? ORDER BY name",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(&m.ID, &m.SnapshotID, &m.Name, &m.Value); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
