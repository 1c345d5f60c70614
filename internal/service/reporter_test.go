package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board_syncer/internal/domain"
)

func TestLogReporter_ReportFailure(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewLogReporter(slog.New(slog.NewJSONHandler(&buf, nil)))

	reporter.ReportFailure("sync", &domain.TransportError{
		Message: "unexpected status",
		Status:  503,
		Payload: []byte("maintenance"),
		Err:     errors.New("503 Service Unavailable"),
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "sync", entry["operation"])
	assert.Equal(t, float64(503), entry["status"])
	assert.Equal(t, "maintenance", entry["payload"])
	assert.Contains(t, entry["message"], "unexpected status")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate([]byte("short"), 10))
	assert.Equal(t, "abc...", truncate([]byte("abcdef"), 3))

	// "é" is two bytes, cutting after the first one must drop it
	assert.Equal(t, "a...", truncate([]byte("aé"+strings.Repeat("x", 5)), 2))
}
