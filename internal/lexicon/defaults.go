package lexicon

import "regexp"

var defaultActionVerbs = []string{
	"achieved", "analyzed", "built", "created", "designed", "developed",
	"enhanced", "established", "executed", "generated", "implemented",
	"improved", "increased", "launched", "led", "managed", "optimized",
	"organized", "performed", "planned", "produced", "reduced", "resolved",
	"streamlined", "supervised", "transformed", "utilized", "automated",
	"collaborated", "coordinated", "delivered", "demonstrated", "directed",
	"facilitated", "initiated", "maintained", "operated", "oversaw",
	"pioneered", "presented", "processed", "programmed", "researched",
	"spearheaded", "strategized", "trained", "upgraded", "validated",
}

var defaultTechnicalSkills = []string{
	"python", "java", "javascript", "react", "node.js", "sql", "mongodb",
	"aws", "azure", "docker", "kubernetes", "git", "linux", "html", "css",
	"machine learning", "data analysis", "excel", "tableau", "powerbi",
	"photoshop", "illustrator", "figma", "sketch", "autocad", "solidworks",
	"project management", "agile", "scrum", "jira", "confluence", "salesforce",
}

var defaultSoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"critical thinking", "adaptability", "creativity", "time management",
	"collaboration", "analytical", "detail-oriented", "organized",
	"customer service", "presentation", "negotiation", "mentoring",
}

var defaultSections = []Section{
	{Name: "Experience", Core: true, Keywords: []string{"experience", "employment", "work history", "professional"}},
	{Name: "Education", Core: true, Keywords: []string{"education", "degree", "university", "college", "school"}},
	{Name: "Skills", Core: true, Keywords: []string{"skills", "technical", "competencies", "proficiencies"}},
	{Name: "Summary", Core: true, Keywords: []string{"summary", "objective", "profile", "about"}},
	{Name: "Projects", Core: false, Keywords: []string{"projects", "portfolio"}},
	{Name: "Certifications", Core: false, Keywords: []string{"certifications", "certificates", "licenses"}},
}

// Metric kinds, in fixed evaluation and reporting order.
const (
	KindPercentage = "percentage"
	KindCurrency   = "currency"
	KindPlus       = "plus"
	KindThousands  = "thousands"
	KindMagnitude  = "magnitude"
	KindTimePeriod = "time_period"
	KindRange      = "range"
	KindDecimal    = "decimal"
)

var defaultNumberPatterns = []NumberPattern{
	{Kind: KindPercentage, Pattern: regexp.MustCompile(`\d+(?:\.\d+)?%`)},
	{Kind: KindCurrency, Pattern: regexp.MustCompile(`\$[\d,]+(?:\.\d+)?`)},
	{Kind: KindPlus, Pattern: regexp.MustCompile(`\d+\+`)},
	{Kind: KindThousands, Pattern: regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b`)},
	{Kind: KindMagnitude, Pattern: regexp.MustCompile(`\b\d+(?:\.\d+)?[KMB]\b`)},
	{Kind: KindTimePeriod, Pattern: regexp.MustCompile(`(?i)\b\d+\s*(?:years?|months?|weeks?|days?)\b`)},
	{Kind: KindRange, Pattern: regexp.MustCompile(`\b\d+\s*-\s*\d+\b`)},
	{Kind: KindDecimal, Pattern: regexp.MustCompile(`\b\d+\.\d+\b`)},
}

// Default builds the canonical lexicon. The vocabularies are fixed at
// compile time; callers must treat the returned value as immutable.
func Default() *Lexicon {
	verbs := make(map[string]struct{}, len(defaultActionVerbs))
	for _, v := range defaultActionVerbs {
		verbs[v] = struct{}{}
	}
	return &Lexicon{
		ActionVerbs:     verbs,
		TechnicalSkills: defaultTechnicalSkills,
		SoftSkills:      defaultSoftSkills,
		Sections:        defaultSections,
		NumberPatterns:  defaultNumberPatterns,
	}
}
