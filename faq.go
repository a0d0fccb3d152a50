package fundfaq

import (
	"context"
	"strings"
)

// FAQ represents a single question/answer entry with its citation.
// Keywords are lowercase and matched against normalized queries.
type FAQ struct {
	ID         int      `json:"id" yaml:"id"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
	Question   string   `json:"question" yaml:"question"`
	Answer     string   `json:"answer" yaml:"answer"`
	Source     string   `json:"source" yaml:"source"`
	SourceName string   `json:"source_name" yaml:"source_name"`
}

// Validate returns an error if the FAQ contains invalid fields.
func (f *FAQ) Validate() error {
	if f.ID <= 0 {
		return Errorf(EINVALID, "faq id must be positive, got %d", f.ID)
	}
	if len(f.Keywords) == 0 {
		return Errorf(EINVALID, "faq %d: at least one keyword required", f.ID)
	}
	for _, k := range f.Keywords {
		if strings.TrimSpace(k) == "" {
			return Errorf(EINVALID, "faq %d: blank keyword", f.ID)
		}
		if strings.ToLower(k) != k {
			return Errorf(EINVALID, "faq %d: keyword %q must be lowercase", f.ID, k)
		}
	}
	if f.Question == "" {
		return Errorf(EINVALID, "faq %d: question required", f.ID)
	}
	if f.Answer == "" {
		return Errorf(EINVALID, "faq %d: answer required", f.ID)
	}
	if f.Source == "" {
		return Errorf(EINVALID, "faq %d: source URL required", f.ID)
	}
	return nil
}

// Clone returns a deep copy of the FAQ.
func (f *FAQ) Clone() *FAQ {
	other := *f
	other.Keywords = append([]string(nil), f.Keywords...)
	return &other
}

// Summary returns the listing view of the FAQ.
func (f *FAQ) Summary() *FAQSummary {
	return &FAQSummary{ID: f.ID, Question: f.Question}
}

// FAQSummary is the listing view of an FAQ.
type FAQSummary struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

// FAQService provides read-only access to the FAQ catalog.
type FAQService interface {
	// FindFAQSummaries returns the id and question of every FAQ in catalog order.
	FindFAQSummaries(ctx context.Context) ([]*FAQSummary, error)

	// FindFAQByID retrieves an FAQ by ID.
	// Returns ENOTFOUND if no FAQ has that ID.
	FindFAQByID(ctx context.Context, id int) (*FAQ, error)
}

// Searcher selects the FAQ that best answers a free-text query.
type Searcher interface {
	// Search returns the best matching FAQ.
	// Returns ENOQUERY if the query is blank and ENOTFOUND if nothing matches.
	Search(ctx context.Context, query string) (*FAQ, error)
}
