package engine

import "sort"

// Overall tier thresholds and labels.
const (
	tierExcellentFloor = 85.0
	tierGoodFloor      = 70.0
	tierModerateFloor  = 55.0

	TierExcellent        = "excellent"
	TierGood             = "good"
	TierModerate         = "moderate"
	TierNeedsImprovement = "needs_improvement"
)

const (
	priorityThreshold = 70.0
	priorityLimit     = 3
)

var tierStatements = map[string]string{
	TierExcellent:        "Excellent resume quality - ready for applications",
	TierGood:             "Good foundation with room for targeted improvements",
	TierModerate:         "Moderate quality - several areas need attention",
	TierNeedsImprovement: "Significant improvements needed across multiple areas",
}

var priorityRecommendations = map[string]string{
	CategoryContact:      "Priority: Complete all contact information",
	CategorySections:     "Priority: Include all essential resume sections",
	CategoryActionVerbs:  "Priority: Incorporate more dynamic action verbs",
	CategoryQuantifiable: "Priority: Add measurable achievements and metrics",
	CategorySkills:       "Priority: Expand and detail your skills section",
	CategoryFormat:       "Priority: Optimize formatting and length",
}

// Aggregate combines the category scores into the overall assessment: a
// mean score, its tier, and prioritized recommendations for the weakest
// categories. Pure function of the board; recomputed on every run.
func Aggregate(board ScoreBoard) OverallAssessment {
	average := board.Average()
	tier := tierFor(average)

	recs := []string{tierStatements[tier]}

	// Stable ascending sort keeps declaration order on equal scores, so
	// the earlier-declared category wins priority on ties.
	sorted := make(ScoreBoard, len(board))
	copy(sorted, board)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	emitted := 0
	for _, cs := range sorted {
		if emitted >= priorityLimit {
			break
		}
		if cs.Score >= priorityThreshold {
			break
		}
		if text, ok := priorityRecommendations[cs.Category]; ok {
			recs = append(recs, text)
			emitted++
		}
	}

	return OverallAssessment{
		AverageScore:    average,
		Tier:            tier,
		Recommendations: recs,
	}
}

func tierFor(average float64) string {
	switch {
	case average >= tierExcellentFloor:
		return TierExcellent
	case average >= tierGoodFloor:
		return TierGood
	case average >= tierModerateFloor:
		return TierModerate
	default:
		return TierNeedsImprovement
	}
}
