package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fundfaq"
)

// Ensure LoggingSearcher implements fundfaq.Searcher.
var _ fundfaq.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   fundfaq.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next fundfaq.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query and outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (faq *fundfaq.FAQ, err error) {
	defer func(begin time.Time) {
		matched := 0
		if faq != nil {
			matched = faq.ID
		}
		s.logger.Info("faq search",
			"query", query,
			"match", matched,
			"code", fundfaq.ErrorCode(err),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
