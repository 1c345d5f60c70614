package service

import (
	"log/slog"
	"unicode/utf8"

	"board_syncer/internal/domain"
)

const maxLoggedPayload = 512

// LogReporter logs board retrieval failures.
type LogReporter struct {
	logger *slog.Logger
}

func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) ReportFailure(operation string, err *domain.TransportError) {
	r.logger.Error("board retrieval failed",
		"operation", operation,
		"message", err.Error(),
		"status", err.Status,
		"payload", truncate(err.Payload, maxLoggedPayload),
	)
}

func truncate(payload []byte, n int) string {
	if len(payload) <= n {
		return string(payload)
	}
	cut := payload[:n]
	// don't split a multi-byte rune
	for len(cut) > 0 && !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}
	return string(cut) + "..."
}
