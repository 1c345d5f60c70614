package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"board_syncer/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, board string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, board, last_synced_at, last_post_id, total_appended
		FROM sync_state
		WHERE board = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, board)
	if errors.Is(err, sql.ErrNoRows) {
		// Return empty state for new boards
		return &domain.SyncState{Board: board}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (board, last_synced_at, last_post_id, total_appended)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (board) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			last_post_id = EXCLUDED.last_post_id,
			total_appended = EXCLUDED.total_appended`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Board,
		state.LastSyncedAt,
		state.LastPostID,
		state.TotalAppended,
	)
	return err
}
