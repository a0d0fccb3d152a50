package fundfaq

import (
	"strings"
	"unicode/utf8"
)

// NormalizeQuery lowercases the query and trims surrounding whitespace.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(strings.ToLower(query))
}

// Score returns the sum of the character lengths of every keyword of faq
// contained in the normalized query. Overlapping keywords are counted
// independently.
func Score(faq *FAQ, query string) int {
	score := 0
	for _, keyword := range faq.Keywords {
		if strings.Contains(query, keyword) {
			score += utf8.RuneCountInString(keyword)
		}
	}
	return score
}

// BestMatch returns the highest scoring FAQ for query along with its score.
// Ties go to the FAQ that appears first. Returns nil and zero when no
// keyword of any FAQ appears in the query.
func BestMatch(faqs []*FAQ, query string) (*FAQ, int) {
	query = NormalizeQuery(query)

	var best *FAQ
	bestScore := 0
	for _, faq := range faqs {
		if score := Score(faq, query); score > bestScore {
			best, bestScore = faq, score
		}
	}
	return best, bestScore
}

// Match is BestMatch with the failure cases reported as errors.
// Returns ENOQUERY for a blank query and ENOTFOUND when nothing matches.
func Match(faqs []*FAQ, query string) (*FAQ, error) {
	if NormalizeQuery(query) == "" {
		return nil, Errorf(ENOQUERY, "No query provided")
	}
	faq, _ := BestMatch(faqs, query)
	if faq == nil {
		return nil, Errorf(ENOTFOUND, "no FAQ matches %q", strings.TrimSpace(query))
	}
	return faq, nil
}
