package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"board_syncer/internal/domain"
)

// Archive records appended posts and per-board sync state. It is write-only:
// the display is always rebuilt from the board, never from the archive.
type Archive struct {
	posts     *PostStore
	syncState *SyncStateStore
	txManager *TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewArchive(db *sqlx.DB, logger *slog.Logger) *Archive {
	return &Archive{
		posts:     NewPostStore(db),
		syncState: NewSyncStateStore(db),
		txManager: NewTransactionManager(db),
		logger:    logger,
		now:       time.Now,
	}
}

// PostsAppended implements service.AppendListener.
func (a *Archive) PostsAppended(ctx context.Context, board string, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	inserted := 0
	err := a.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range posts {
			ok, err := a.posts.Insert(txCtx, board, &posts[i])
			if err != nil {
				return fmt.Errorf("insert post %s: %w", posts[i].ID, err)
			}
			if ok {
				inserted++
			}
		}

		state, err := a.syncState.Get(txCtx, board)
		if err != nil {
			return fmt.Errorf("get sync state: %w", err)
		}

		state.Board = board
		state.LastSyncedAt = a.now()
		state.LastPostID = int64(posts[len(posts)-1].ID)
		state.TotalAppended += int64(inserted)

		if err := a.syncState.Update(txCtx, state); err != nil {
			return fmt.Errorf("update sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("archive posts: %w", err)
	}

	a.logger.Debug("archived posts",
		"board", board,
		"inserted", inserted,
		"duplicates", len(posts)-inserted,
	)
	return nil
}
