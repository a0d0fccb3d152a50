package fundfaq

import (
	"fmt"
	"strings"
)

// FormatAnswer formats an FAQ for terminal display: the question, the
// answer body and a source citation, separated by blank lines.
func FormatAnswer(faq *FAQ) string {
	var b strings.Builder
	b.WriteString(faq.Question)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(faq.Answer))
	b.WriteString("\n\n")
	b.WriteString(formatSource(faq))
	return b.String()
}

func formatSource(faq *FAQ) string {
	if faq.SourceName == "" {
		return "Source: " + faq.Source
	}
	return fmt.Sprintf("Source: %s (%s)", faq.SourceName, faq.Source)
}

// FormatSummaries formats summaries as a numbered list, one per line.
func FormatSummaries(summaries []*FAQSummary) string {
	if len(summaries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("  %d. %s", s.ID, s.Question))
	}
	return strings.Join(lines, "\n")
}
