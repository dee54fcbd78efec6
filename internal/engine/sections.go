package engine

import (
	"fmt"
	"strings"

	"resume-score/internal/lexicon"
)

const (
	sectionsCoreWeight    = 80.0
	sectionsOptionalBonus = 10.0
)

// Sections checks the case-folded text for each section category's
// trigger keywords. Core sections share 80 points proportionally; each
// optional section present adds a fixed bonus, capped at 100.
func Sections(lex *lexicon.Lexicon, text string) CategoryResult {
	lower := strings.ToLower(text)

	var coreTotal, corePresent int
	var optionalPresent int
	feedback := make([]string, 0, len(lex.Sections))
	detail := make(map[string]any, len(lex.Sections))

	for _, section := range lex.Sections {
		present := false
		for _, keyword := range section.Keywords {
			if strings.Contains(lower, keyword) {
				present = true
				break
			}
		}

		tag := "Optional"
		if section.Core {
			tag = "Core"
			coreTotal++
			if present {
				corePresent++
			}
		} else if present {
			optionalPresent++
		}

		if present {
			feedback = append(feedback, fmt.Sprintf("✓ %s section present (%s)", section.Name, tag))
		} else {
			feedback = append(feedback, fmt.Sprintf("✗ %s section missing (%s)", section.Name, tag))
		}
		detail[section.Name] = present
	}

	score := 0.0
	if coreTotal > 0 {
		score = float64(corePresent) / float64(coreTotal) * sectionsCoreWeight
	}
	score += float64(optionalPresent) * sectionsOptionalBonus

	return CategoryResult{
		Score:    clamp(score),
		Feedback: feedback,
		Detail:   detail,
	}
}
