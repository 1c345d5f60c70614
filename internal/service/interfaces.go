package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"board_syncer/internal/domain"
)

// Source fetches posts from a board. Responses come back in no particular order.
type Source interface {
	ID() string
	FetchLatest(ctx context.Context) ([]domain.Post, error)
	FetchSince(ctx context.Context, marker domain.PostID) ([]domain.Post, error)
}

// Display holds the posts shown to the user, oldest first.
type Display interface {
	LastID() (domain.PostID, bool)
	Contains(id domain.PostID) bool
	Append(posts []domain.Post, fragments []domain.Fragment)
}

type Formatter interface {
	Format(post domain.Post) domain.Fragment
}

// InputSurface is the message composition area next to the board.
type InputSurface interface {
	Reset()
}

type FailureReporter interface {
	ReportFailure(operation string, err *domain.TransportError)
}

// AppendListener is notified after posts were appended to the display.
type AppendListener interface {
	PostsAppended(ctx context.Context, board string, posts []domain.Post) error
}
