package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board_syncer/internal/domain"
)

func TestNewPostMessage(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name       string
		post       domain.Post
		wantAuthor string
	}{
		{
			name:       "authenticated",
			post:       domain.Post{ID: 1, Time: "20240301100000", Login: "houplaboom", UserAgent: "Firefox", Message: "plop"},
			wantAuthor: "houplaboom",
		},
		{
			name:       "anonymous cut to prefix",
			post:       domain.Post{ID: 2, Time: "20240301100000", UserAgent: "Mozilla/5.0 (X11; Linux x86_64)", Message: "coin"},
			wantAuthor: "Mozilla/5.0 (X11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := newPostMessage("oxyboard", &tt.post, 16, now)

			assert.Equal(t, "oxyboard", msg.Board)
			assert.Equal(t, tt.post.ID, msg.ID)
			assert.Equal(t, tt.wantAuthor, msg.Author)
			assert.Equal(t, tt.post.Message, msg.Message)
			assert.Equal(t, time.UTC, msg.Timestamp.Location())
		})
	}
}

func TestPostMessage_JSON(t *testing.T) {
	msg := newPostMessage("oxyboard", &domain.Post{ID: 42, Time: "20240301100000", Login: "ptramo", Message: "moules<"}, 16, time.Unix(0, 0))

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.Equal(t, float64(42), fields["id"])
	assert.Equal(t, "ptramo", fields["author"])
	assert.Equal(t, "moules<", fields["message"])
	assert.NotContains(t, fields, "user_agent")
}
