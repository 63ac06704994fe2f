package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/topicdump"
)

// Ensure LoggingExtractor implements topicdump.Extractor.
var _ topicdump.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   topicdump.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next topicdump.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
// Sentinel titles are logged at warn level since they usually mean the
// page markup changed.
func (e *LoggingExtractor) Extract(html string, sourceURL string) (post *topicdump.Post, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if post != nil {
			attrs = append(attrs,
				"title", post.Title,
				"content_chars", len([]rune(post.Content)),
				"replies", len(post.Replies),
			)
		}
		if post != nil && post.Title == topicdump.UnknownTitle {
			e.logger.Warn("extract: no title element", attrs...)
			return
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
