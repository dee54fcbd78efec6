package engine

// Canonical category names. They are the contract between the engine,
// the aggregator, and every presentation surface; declaration order is
// presentation order and decides priority ties.
const (
	CategoryContact      = "Contact Information"
	CategorySections     = "Resume Sections"
	CategoryActionVerbs  = "Action Verbs"
	CategoryQuantifiable = "Quantifiable Results"
	CategorySkills       = "Skills Assessment"
	CategoryFormat       = "Format & Length"
)

// Categories lists all category names in presentation order.
var Categories = []string{
	CategoryContact,
	CategorySections,
	CategoryActionVerbs,
	CategoryQuantifiable,
	CategorySkills,
	CategoryFormat,
}

// CategoryResult is the output of one analyzer for one résumé.
type CategoryResult struct {
	Score    float64        `json:"score"`
	Feedback []string       `json:"feedback"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// CategoryScore pairs a category name with its score.
type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// ScoreBoard holds all category scores in presentation order.
type ScoreBoard []CategoryScore

// Get returns the score for a category name.
func (b ScoreBoard) Get(category string) (float64, bool) {
	for _, cs := range b {
		if cs.Category == category {
			return cs.Score, true
		}
	}
	return 0, false
}

// Average returns the mean of all category scores, 0 for an empty board.
func (b ScoreBoard) Average() float64 {
	if len(b) == 0 {
		return 0
	}
	var sum float64
	for _, cs := range b {
		sum += cs.Score
	}
	return sum / float64(len(b))
}

// OverallAssessment is the aggregator output: average score, a tier
// label, and ordered recommendations.
type OverallAssessment struct {
	AverageScore    float64  `json:"averageScore"`
	Tier            string   `json:"tier"`
	Recommendations []string `json:"recommendations"`
}

// Assessment is the full analysis output for one résumé.
type Assessment struct {
	Scores  ScoreBoard                `json:"scores"`
	Results map[string]CategoryResult `json:"results"`
	Overall OverallAssessment         `json:"overall"`
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
