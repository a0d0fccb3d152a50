package mock

import (
	"context"

	"github.com/fwojciec/fundfaq"
)

var _ fundfaq.FAQService = (*FAQService)(nil)

// FAQService is a mock implementation of fundfaq.FAQService.
type FAQService struct {
	FindFAQSummariesFn func(ctx context.Context) ([]*fundfaq.FAQSummary, error)
	FindFAQByIDFn      func(ctx context.Context, id int) (*fundfaq.FAQ, error)
}

func (s *FAQService) FindFAQSummaries(ctx context.Context) ([]*fundfaq.FAQSummary, error) {
	return s.FindFAQSummariesFn(ctx)
}

func (s *FAQService) FindFAQByID(ctx context.Context, id int) (*fundfaq.FAQ, error) {
	return s.FindFAQByIDFn(ctx, id)
}
