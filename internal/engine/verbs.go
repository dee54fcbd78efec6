package engine

import (
	"fmt"
	"sort"
	"strings"

	"resume-score/internal/lexicon"
	"resume-score/internal/tokenize"
)

const (
	verbVarietyWeight = 8.0
	verbVarietyCap    = 70.0
	verbUsageWeight   = 2.0
	verbUsageCap      = 30.0

	verbTierExcellent = 10
	verbTierGood      = 6

	topVerbCount = 5
)

// VerbCount is one matched action verb with its occurrence count.
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// ActionVerbs counts lexicon action verbs in the tokenized text. Variety
// (unique verbs) carries most of the score, total usage the rest, so an
// extra occurrence of a distinct verb never lowers the score.
func ActionVerbs(lex *lexicon.Lexicon, tok tokenize.Tokenizer, text string) CategoryResult {
	counts := make(map[string]int)
	order := make([]string, 0, 16)
	usage := 0
	for _, token := range tok.Tokens(text) {
		if !lex.HasActionVerb(token) {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
		usage++
	}
	variety := len(order)

	score := min(float64(variety)*verbVarietyWeight, verbVarietyCap) +
		min(float64(usage)*verbUsageWeight, verbUsageCap)

	feedback := make([]string, 0, 3)
	switch {
	case variety >= verbTierExcellent:
		feedback = append(feedback, fmt.Sprintf("Excellent variety of action verbs (%d unique)", variety))
	case variety >= verbTierGood:
		feedback = append(feedback, fmt.Sprintf("Good use of action verbs (%d unique)", variety))
	default:
		feedback = append(feedback, fmt.Sprintf("Limited action verb variety (%d unique)", variety))
		feedback = append(feedback, "Consider using more impactful action verbs")
	}

	top := topVerbs(order, counts, topVerbCount)
	if len(top) > 0 {
		parts := make([]string, len(top))
		for i, vc := range top {
			parts[i] = fmt.Sprintf("%s (%d)", vc.Verb, vc.Count)
		}
		feedback = append(feedback, "Most frequent: "+strings.Join(parts, ", "))
	}

	return CategoryResult{
		Score:    clamp(score),
		Feedback: feedback,
		Detail: map[string]any{
			"variety":  variety,
			"usage":    usage,
			"topVerbs": top,
		},
	}
}

// topVerbs ranks verbs by count descending; equal counts keep their
// first-seen order in the text.
func topVerbs(order []string, counts map[string]int, n int) []VerbCount {
	ranked := make([]VerbCount, 0, len(order))
	for _, verb := range order {
		ranked = append(ranked, VerbCount{Verb: verb, Count: counts[verb]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
