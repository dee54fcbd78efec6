package engine

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
	websitePattern  = regexp.MustCompile(`(?:https?://|www\.)[\w-]+(?:\.[\w-]+)+`)
)

// ContactInfo checks the résumé for email, phone, and LinkedIn (core
// items) plus GitHub and a personal website (bonus items). Phone-like
// substrings inside URLs or dates may false-positive; that is accepted
// as part of the heuristic.
func ContactInfo(text string) CategoryResult {
	lower := strings.ToLower(text)

	hasEmail := emailPattern.MatchString(text)
	hasPhone := phonePattern.MatchString(text)
	hasLinkedin := linkedinPattern.MatchString(lower)
	hasGithub := githubPattern.MatchString(lower)
	hasWebsite := websitePattern.MatchString(lower)

	core := 0
	for _, present := range []bool{hasEmail, hasPhone, hasLinkedin} {
		if present {
			core++
		}
	}
	bonus := 0
	for _, present := range []bool{hasGithub, hasWebsite} {
		if present {
			bonus++
		}
	}
	score := clamp(float64(core)/3*100 + float64(bonus)*10)

	feedback := make([]string, 0, 5)
	feedback = append(feedback, presence(hasEmail, "✓ Email address found", "✗ Missing email address"))
	feedback = append(feedback, presence(hasPhone, "✓ Phone number found", "✗ Missing phone number"))
	feedback = append(feedback, presence(hasLinkedin, "✓ LinkedIn profile found", "✗ LinkedIn profile missing"))
	feedback = append(feedback, presence(hasGithub, "✓ GitHub profile found", "✗ GitHub profile missing"))
	feedback = append(feedback, presence(hasWebsite, "✓ Personal website found", "✗ Personal website missing"))

	return CategoryResult{
		Score:    score,
		Feedback: feedback,
		Detail: map[string]any{
			"email":    hasEmail,
			"phone":    hasPhone,
			"linkedin": hasLinkedin,
			"github":   hasGithub,
			"website":  hasWebsite,
		},
	}
}

func presence(present bool, found, missing string) string {
	if present {
		return found
	}
	return missing
}
