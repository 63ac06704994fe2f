package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/topicdump"
)

// Ensure LoggingWriter implements topicdump.PostWriter.
var _ topicdump.PostWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a PostWriter with logging.
type LoggingWriter struct {
	next   topicdump.PostWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next topicdump.PostWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WritePost delegates to the wrapped writer and logs the resulting path.
func (w *LoggingWriter) WritePost(ctx context.Context, post *topicdump.Post, filename string) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePost(ctx, post, filename)
}
