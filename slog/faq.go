package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fundfaq"
)

// Ensure LoggingFAQService implements fundfaq.FAQService.
var _ fundfaq.FAQService = (*LoggingFAQService)(nil)

// LoggingFAQService wraps a FAQService with logging.
type LoggingFAQService struct {
	next   fundfaq.FAQService
	logger *slog.Logger
}

// NewLoggingFAQService creates a new LoggingFAQService.
func NewLoggingFAQService(next fundfaq.FAQService, logger *slog.Logger) *LoggingFAQService {
	return &LoggingFAQService{next: next, logger: logger}
}

// FindFAQSummaries delegates to the wrapped service and logs the operation.
func (s *LoggingFAQService) FindFAQSummaries(ctx context.Context) (summaries []*fundfaq.FAQSummary, err error) {
	defer func(begin time.Time) {
		s.logger.Info("faq list",
			"count", len(summaries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFAQSummaries(ctx)
}

// FindFAQByID delegates to the wrapped service and logs the operation.
func (s *LoggingFAQService) FindFAQByID(ctx context.Context, id int) (faq *fundfaq.FAQ, err error) {
	defer func(begin time.Time) {
		s.logger.Info("faq lookup",
			"id", id,
			"found", faq != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindFAQByID(ctx, id)
}
