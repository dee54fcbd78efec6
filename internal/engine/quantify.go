package engine

import (
	"fmt"
	"strings"

	"resume-score/internal/lexicon"
)

const (
	metricMatchWeight = 10.0
	metricKindWeight  = 5.0

	metricTierStrong   = 8
	metricTierModerate = 4
)

// QuantifiableResults applies every number pattern in lexicon order and
// scores the combined match count plus the number of distinct metric
// kinds that matched. A pattern with no matches contributes zero, never
// an error.
func QuantifiableResults(lex *lexicon.Lexicon, text string) CategoryResult {
	total := 0
	kindsMatched := 0
	perKind := make(map[string]int, len(lex.NumberPatterns))
	var breakdown []string

	for _, np := range lex.NumberPatterns {
		matches := np.Pattern.FindAllString(text, -1)
		perKind[np.Kind] = len(matches)
		if len(matches) == 0 {
			continue
		}
		total += len(matches)
		kindsMatched++
		breakdown = append(breakdown, fmt.Sprintf("%s ×%d", np.Kind, len(matches)))
	}

	score := clamp(float64(total)*metricMatchWeight + float64(kindsMatched)*metricKindWeight)

	feedback := make([]string, 0, 3)
	switch {
	case total >= metricTierStrong:
		feedback = append(feedback, fmt.Sprintf("Strong quantifiable results (%d metrics found)", total))
	case total >= metricTierModerate:
		feedback = append(feedback, fmt.Sprintf("Moderate quantifiable results (%d metrics found)", total))
	default:
		feedback = append(feedback, fmt.Sprintf("Limited quantifiable results (%d metrics found)", total))
		feedback = append(feedback, "Add specific numbers, percentages, or metrics to demonstrate impact")
	}
	if len(breakdown) > 0 {
		feedback = append(feedback, "Metric breakdown: "+strings.Join(breakdown, ", "))
	}

	return CategoryResult{
		Score:    score,
		Feedback: feedback,
		Detail: map[string]any{
			"total":   total,
			"kinds":   kindsMatched,
			"perKind": perKind,
		},
	}
}
