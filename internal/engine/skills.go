package engine

import (
	"fmt"
	"strings"

	"resume-score/internal/lexicon"
)

const (
	techSkillWeight = 4.0
	techSkillCap    = 60.0
	softSkillWeight = 5.0
	softSkillCap    = 40.0

	skillSampleSize = 5
	skillFloor      = 5
)

// Skills scans the case-folded text for every lexicon skill as a plain
// substring. Multi-word skills match correctly; substrings embedded in
// unrelated words can false-positive, which the heuristic accepts.
func Skills(lex *lexicon.Lexicon, text string) CategoryResult {
	lower := strings.ToLower(text)

	foundTech := containedSkills(lex.TechnicalSkills, lower)
	foundSoft := containedSkills(lex.SoftSkills, lower)

	score := min(float64(len(foundTech))*techSkillWeight, techSkillCap) +
		min(float64(len(foundSoft))*softSkillWeight, softSkillCap)

	feedback := make([]string, 0, 5)
	feedback = append(feedback, fmt.Sprintf("Technical skills identified: %d", len(foundTech)))
	feedback = append(feedback, fmt.Sprintf("Soft skills identified: %d", len(foundSoft)))
	if len(foundTech) > 0 {
		feedback = append(feedback, "Key technical skills: "+strings.Join(sample(foundTech, skillSampleSize), ", "))
	}
	if len(foundSoft) > 0 {
		feedback = append(feedback, "Key soft skills: "+strings.Join(sample(foundSoft, skillSampleSize), ", "))
	}
	if len(foundTech)+len(foundSoft) < skillFloor {
		feedback = append(feedback, "Consider expanding your skills section")
	}

	return CategoryResult{
		Score:    clamp(score),
		Feedback: feedback,
		Detail: map[string]any{
			"technical": foundTech,
			"soft":      foundSoft,
		},
	}
}

func containedSkills(skills []string, lower string) []string {
	found := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

func sample(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
