package lexicon

import "regexp"

// Lexicon bundles the reference vocabularies and patterns the analyzers
// match against. It is built once at startup and shared read-only.
type Lexicon struct {
	ActionVerbs     map[string]struct{}
	TechnicalSkills []string
	SoftSkills      []string
	Sections        []Section
	NumberPatterns  []NumberPattern
}

// Section is one résumé section category with the keywords that signal
// its presence. Core sections count toward the base score; optional
// sections add a bonus.
type Section struct {
	Name     string
	Keywords []string
	Core     bool
}

// NumberPattern detects one kind of quantifiable metric.
type NumberPattern struct {
	Kind    string
	Pattern *regexp.Regexp
}

// HasActionVerb reports whether the token belongs to the action-verb set.
func (l *Lexicon) HasActionVerb(token string) bool {
	_, ok := l.ActionVerbs[token]
	return ok
}
