package display

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board_syncer/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func formatted(posts ...domain.Post) []domain.Fragment {
	f := NewFormatter(DefaultAuthorPrefix)
	out := make([]domain.Fragment, len(posts))
	for i, p := range posts {
		out[i] = f.Format(p)
	}
	return out
}

func TestBoard_Empty(t *testing.T) {
	b := NewBoard(nil, discardLogger())

	_, ok := b.LastID()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Contains(1))
}

func TestBoard_AppendRendersInOrder(t *testing.T) {
	var out bytes.Buffer
	b := NewBoard(&out, discardLogger())

	posts := []domain.Post{
		{ID: 1, Time: "20240101120000", Login: "ptramo", Message: "plop"},
		{ID: 2, Time: "20240101120005", UserAgent: "Firefox/48.0.1", Message: "pan"},
	}
	b.Append(posts, formatted(posts...))

	last, ok := b.LastID()
	require.True(t, ok)
	assert.Equal(t, domain.PostID(2), last)
	assert.True(t, b.Contains(1))
	assert.Equal(t, posts, b.Posts())
	assert.Equal(t, "12:00:00 ptramo> plop\n12:00:05 Firefox/48.0.1> pan\n", out.String())
}

func TestBoard_AppendMismatchPanics(t *testing.T) {
	b := NewBoard(nil, discardLogger())
	assert.Panics(t, func() {
		b.Append([]domain.Post{{ID: 1}}, nil)
	})
}

func TestBoard_Select(t *testing.T) {
	b := NewBoard(nil, discardLogger())
	post := domain.Post{ID: 42, Time: "20161026120000", UserAgent: "Mozilla/5.0 (X11; Linux x86_64)", Message: "hello"}
	b.Append([]domain.Post{post}, formatted(post))

	c := NewComposer()
	require.NoError(t, b.SelectAuthor(42, c))
	require.NoError(t, b.SelectTime(42, c))
	assert.Equal(t, "Mozilla/5.0 (X11< 12:00:00 ", c.Text())
	assert.True(t, c.Focused())

	assert.Error(t, b.SelectAuthor(7, c))
	assert.Error(t, b.SelectTime(7, c))
}
