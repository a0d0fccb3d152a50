// Package inmem provides a read-only, in-memory FAQ catalog implementing
// fundfaq.FAQService and fundfaq.Searcher.
package inmem

import (
	"context"

	"github.com/fwojciec/fundfaq"
)

// Ensure FAQService implements the fundfaq interfaces at compile time.
var (
	_ fundfaq.FAQService = (*FAQService)(nil)
	_ fundfaq.Searcher   = (*FAQService)(nil)
)

// FAQService serves a fixed catalog of FAQs. It is never mutated after
// construction and is safe for concurrent use.
type FAQService struct {
	faqs []*fundfaq.FAQ
	byID map[int]*fundfaq.FAQ
}

// NewFAQService creates a FAQService over a copy of faqs, preserving their
// order. Returns EINVALID if any FAQ is invalid or two FAQs share an ID.
func NewFAQService(faqs []*fundfaq.FAQ) (*FAQService, error) {
	s := &FAQService{
		faqs: make([]*fundfaq.FAQ, 0, len(faqs)),
		byID: make(map[int]*fundfaq.FAQ, len(faqs)),
	}
	for _, faq := range faqs {
		if err := faq.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.byID[faq.ID]; ok {
			return nil, fundfaq.Errorf(fundfaq.EINVALID, "duplicate faq id %d", faq.ID)
		}
		faq = faq.Clone()
		s.faqs = append(s.faqs, faq)
		s.byID[faq.ID] = faq
	}
	return s, nil
}

// NewDefaultFAQService creates a FAQService over the built-in catalog.
func NewDefaultFAQService() *FAQService {
	s, err := NewFAQService(DefaultCatalog())
	if err != nil {
		panic(err)
	}
	return s
}

// FindFAQSummaries returns the id and question of every FAQ in catalog order.
func (s *FAQService) FindFAQSummaries(_ context.Context) ([]*fundfaq.FAQSummary, error) {
	summaries := make([]*fundfaq.FAQSummary, 0, len(s.faqs))
	for _, faq := range s.faqs {
		summaries = append(summaries, faq.Summary())
	}
	return summaries, nil
}

// FindFAQByID retrieves an FAQ by ID.
// Returns ENOTFOUND if no FAQ has that ID.
func (s *FAQService) FindFAQByID(_ context.Context, id int) (*fundfaq.FAQ, error) {
	faq, ok := s.byID[id]
	if !ok {
		return nil, fundfaq.Errorf(fundfaq.ENOTFOUND, "faq %d not found", id)
	}
	return faq.Clone(), nil
}

// Search returns the FAQ whose keywords best match query.
// Returns ENOQUERY if the query is blank and ENOTFOUND if nothing matches.
func (s *FAQService) Search(_ context.Context, query string) (*fundfaq.FAQ, error) {
	faq, err := fundfaq.Match(s.faqs, query)
	if err != nil {
		return nil, err
	}
	return faq.Clone(), nil
}

// Len returns the number of FAQs in the catalog.
func (s *FAQService) Len() int {
	return len(s.faqs)
}
