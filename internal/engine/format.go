package engine

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	lengthWeight = 0.6
	formatWeight = 0.4

	bulletMarkerFloor  = 3
	blockBreakFloor    = 3
	emphasisWordFloor  = 2
	formatSignalCount  = 3
	formatSignalWeight = 100.0 / formatSignalCount
)

type lengthBand struct {
	min, max int
	score    float64
	label    string
}

// Bands are checked in order; max < 0 means unbounded.
var lengthBands = []lengthBand{
	{400, 800, 100, "Optimal length (%d words)"},
	{200, 399, 70, "May be too brief (%d words)"},
	{0, 199, 50, "Too brief (%d words)"},
	{801, 1000, 80, "May be too lengthy (%d words)"},
	{1001, -1, 60, "Too lengthy (%d words)"},
}

// LengthFormat scores word count against discrete bands and blends in
// structural signals: bullet markers, blank-line separated blocks, and
// uppercase emphasis words.
func LengthFormat(text string) CategoryResult {
	wordCount := len(strings.Fields(text))

	lengthScore := 0.0
	lengthLine := ""
	for _, band := range lengthBands {
		if wordCount >= band.min && (band.max < 0 || wordCount <= band.max) {
			lengthScore = band.score
			lengthLine = fmt.Sprintf(band.label, wordCount)
			break
		}
	}

	hasBullets := strings.Contains(text, "•") ||
		strings.Count(text, "- ")+strings.Count(text, "* ") >= bulletMarkerFloor
	hasBlocks := strings.Count(text, "\n\n") > blockBreakFloor
	hasEmphasis := countEmphasisWords(text) >= emphasisWordFloor

	formatScore := 0.0
	feedback := []string{lengthLine}
	if hasBullets {
		formatScore += formatSignalWeight
		feedback = append(feedback, "Uses bullet points effectively")
	} else {
		feedback = append(feedback, "Consider using bullet points for better readability")
	}
	if hasBlocks {
		formatScore += formatSignalWeight
		feedback = append(feedback, "Well-organized section structure")
	} else {
		feedback = append(feedback, "Improve section organization and spacing")
	}
	if hasEmphasis {
		formatScore += formatSignalWeight
		feedback = append(feedback, "Uses emphasis to highlight section headers")
	} else {
		feedback = append(feedback, "Consider capitalized headers to separate sections")
	}

	score := clamp(lengthWeight*lengthScore + formatWeight*formatScore)

	return CategoryResult{
		Score:    score,
		Feedback: feedback,
		Detail: map[string]any{
			"wordCount":   wordCount,
			"lengthScore": lengthScore,
			"formatScore": formatScore,
			"bullets":     hasBullets,
			"blocks":      hasBlocks,
			"emphasis":    hasEmphasis,
		},
	}
}

// countEmphasisWords counts words of three or more letters written
// entirely in uppercase, e.g. section headers like EXPERIENCE.
func countEmphasisWords(text string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if len(word) < 3 {
			continue
		}
		upper := true
		for _, r := range word {
			if !unicode.IsUpper(r) {
				upper = false
				break
			}
		}
		if upper {
			count++
		}
	}
	return count
}
