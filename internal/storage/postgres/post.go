package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"board_syncer/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// Insert archives a post. It reports false when the board already has a post
// with that ID.
func (s *PostStore) Insert(ctx context.Context, board string, post *domain.Post) (bool, error) {
	query := `
		INSERT INTO posts (board, post_id, posted_at, time_raw, login, user_agent, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (board, post_id) DO NOTHING`

	var postedAt *time.Time
	if t, err := post.Timestamp(); err == nil {
		postedAt = &t
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		board,
		int64(post.ID),
		postedAt,
		post.Time,
		post.Login,
		post.UserAgent,
		post.Message,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
