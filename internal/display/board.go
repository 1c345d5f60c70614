// Package display holds the local side of the board: the list of shown posts,
// their formatting and the message composer.
package display

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"board_syncer/internal/domain"
)

// Board is the list of displayed posts, oldest first. Posts are only ever
// appended.
type Board struct {
	mu        sync.RWMutex
	posts     []domain.Post
	fragments []domain.Fragment
	index     map[domain.PostID]int

	out    io.Writer
	logger *slog.Logger
}

// NewBoard creates an empty board that renders appended fragments to out.
// out may be nil.
func NewBoard(out io.Writer, logger *slog.Logger) *Board {
	return &Board{
		index:  make(map[domain.PostID]int),
		out:    out,
		logger: logger,
	}
}

func (b *Board) LastID() (domain.PostID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.posts) == 0 {
		return 0, false
	}
	return b.posts[len(b.posts)-1].ID, true
}

func (b *Board) Contains(id domain.PostID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.index[id]
	return ok
}

// Append adds posts and their fragments as one update.
func (b *Board) Append(posts []domain.Post, fragments []domain.Fragment) {
	if len(posts) != len(fragments) {
		panic(fmt.Sprintf("display: %d posts with %d fragments", len(posts), len(fragments)))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, p := range posts {
		if _, ok := b.index[p.ID]; ok {
			b.logger.Warn("post displayed twice", "id", p.ID)
		}
		b.index[p.ID] = len(b.posts)
		b.posts = append(b.posts, p)
		b.fragments = append(b.fragments, fragments[i])
	}

	if b.out == nil {
		return
	}
	for _, f := range fragments {
		if _, err := fmt.Fprintln(b.out, f.String()); err != nil {
			b.logger.Error("render post", "id", f.PostID, "error", err)
			return
		}
	}
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.posts)
}

// Posts returns a copy of the displayed posts.
func (b *Board) Posts() []domain.Post {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.posts)
}

// Fragment returns the rendered form of a displayed post.
func (b *Board) Fragment(id domain.PostID) (domain.Fragment, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[id]
	if !ok {
		return domain.Fragment{}, false
	}
	return b.fragments[i], true
}

// QuoteTarget receives the text of a clicked author or clock.
type QuoteTarget interface {
	OnAuthorSelected(text string)
	OnTimeSelected(text string)
}

// SelectAuthor forwards the author of a displayed post to target.
func (b *Board) SelectAuthor(id domain.PostID, target QuoteTarget) error {
	f, ok := b.Fragment(id)
	if !ok {
		return fmt.Errorf("post %s is not displayed", id)
	}
	target.OnAuthorSelected(f.Author)
	return nil
}

// SelectTime forwards the clock of a displayed post to target.
func (b *Board) SelectTime(id domain.PostID, target QuoteTarget) error {
	f, ok := b.Fragment(id)
	if !ok {
		return fmt.Errorf("post %s is not displayed", id)
	}
	target.OnTimeSelected(f.Clock)
	return nil
}
