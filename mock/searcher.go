package mock

import (
	"context"

	"github.com/fwojciec/fundfaq"
)

var _ fundfaq.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of fundfaq.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*fundfaq.FAQ, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*fundfaq.FAQ, error) {
	return s.SearchFn(ctx, query)
}
