package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryHandler reports error-level records to Sentry.
type SentryHandler struct {
	attrs []slog.Attr
}

// NewSentryHandler creates a handler that forwards errors to the Sentry hub
// found in the record context, or the global hub.
func NewSentryHandler() *SentryHandler {
	return &SentryHandler{}
}

func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *SentryHandler) Handle(ctx context.Context, record slog.Record) error {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	extra := make(map[string]interface{}, len(h.attrs)+record.NumAttrs())
	for _, a := range h.attrs {
		extra[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		extra[a.Key] = a.Value.String()
		return true
	})

	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Message = record.Message
	event.Timestamp = record.Time
	event.Extra = extra
	hub.CaptureEvent(event)
	return nil
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SentryHandler{attrs: merged}
}

// WithGroup is a no-op; Sentry extras are flat.
func (h *SentryHandler) WithGroup(string) slog.Handler {
	return h
}
