// Package store provides SQLite persistence for fingerfit progress
// snapshots, letting day-level metrics be compared over time.
package store

import "time"

// Snapshot represents a point-in-time capture of the aggregated history.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Version string    `json:"version"`
}

// DayRow is one aggregated day stored within a snapshot.
type DayRow struct {
	ID          int64   `json:"id"`
	SnapshotID  int64   `json:"snapshot_id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	EventCount  int     `json:"event_count"`
	SetsDone    int     `json:"sets_done"`
	ProgressPct float64 `json:"progress_pct"`
	Trend       string  `json:"trend"`
}

// Metric is a named summary value within a snapshot.
type Metric struct {
	ID         int64   `json:"id"`
	SnapshotID int64   `json:"snapshot_id"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
}

// MetricDelta represents the change in a single metric between snapshots.
type MetricDelta struct {
	Name      string  `json:"name"`
	Previous  float64 `json:"previous"`
	Current   float64 `json:"current"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"` // "improved", "regressed", "unchanged"
}

// SnapshotDiff represents the comparison between two snapshots.
type SnapshotDiff struct {
	Previous *Snapshot     `json:"previous"`
	Current  *Snapshot     `json:"current"`
	Deltas   []MetricDelta `json:"deltas"`
}
