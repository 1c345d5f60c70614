package domain

import "time"

type SyncOutcome string

const (
	OutcomeApplied SyncOutcome = "applied"
	OutcomeEmpty   SyncOutcome = "empty"
	OutcomeSkipped SyncOutcome = "skipped"
	OutcomeFailed  SyncOutcome = "failed"
)

// SyncStats holds statistics about a sync cycle or bootstrap load.
type SyncStats struct {
	Board      string
	Marker     PostID
	Fetched    int
	Appended   int
	Ignored    int
	Outcome    SyncOutcome
	Recovered  bool // marker post missing from the response
	SinkErrors int
	Duration   time.Duration
}

// SyncState is the per-board record kept by the archive.
type SyncState struct {
	ID            int64     `db:"id"`
	Board         string    `db:"board"`
	LastSyncedAt  time.Time `db:"last_synced_at"`
	LastPostID    int64     `db:"last_post_id"`
	TotalAppended int64     `db:"total_appended"`
}
