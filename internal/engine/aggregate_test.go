package engine

import (
	"reflect"
	"testing"
)

func boardWith(scores map[string]float64) ScoreBoard {
	board := make(ScoreBoard, 0, len(Categories))
	for _, name := range Categories {
		board = append(board, CategoryScore{Category: name, Score: scores[name]})
	}
	return board
}

func TestAggregateAverageAndTier(t *testing.T) {
	cases := []struct {
		score float64
		tier  string
	}{
		{90, TierExcellent},
		{85, TierExcellent},
		{75, TierGood},
		{60, TierModerate},
		{40, TierNeedsImprovement},
	}
	for _, tc := range cases {
		uniform := map[string]float64{}
		for _, name := range Categories {
			uniform[name] = tc.score
		}
		got := Aggregate(boardWith(uniform))
		if got.AverageScore != tc.score {
			t.Fatalf("score=%v: expected average %v, got %v", tc.score, tc.score, got.AverageScore)
		}
		if got.Tier != tc.tier {
			t.Fatalf("score=%v: expected tier %s, got %s", tc.score, tc.tier, got.Tier)
		}
		if got.Recommendations[0] != tierStatements[tc.tier] {
			t.Fatalf("expected tier statement first, got %v", got.Recommendations)
		}
	}
}

func TestAggregatePriorityRecommendations(t *testing.T) {
	board := boardWith(map[string]float64{
		CategoryContact:      90,
		CategorySections:     95,
		CategoryActionVerbs:  40,
		CategoryQuantifiable: 30,
		CategorySkills:       85,
		CategoryFormat:       65,
	})
	got := Aggregate(board)

	want := []string{
		tierStatements[TierModerate],
		priorityRecommendations[CategoryQuantifiable],
		priorityRecommendations[CategoryActionVerbs],
		priorityRecommendations[CategoryFormat],
	}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("expected %v, got %v", want, got.Recommendations)
	}
}

func TestAggregateTieBreakByDeclarationOrder(t *testing.T) {
	board := boardWith(map[string]float64{
		CategoryContact:      100,
		CategorySections:     50,
		CategoryActionVerbs:  100,
		CategoryQuantifiable: 50,
		CategorySkills:       100,
		CategoryFormat:       100,
	})
	got := Aggregate(board)

	// Sections is declared before Quantifiable Results; on equal scores
	// it must receive the earlier priority slot.
	want := []string{
		tierStatements[TierGood],
		priorityRecommendations[CategorySections],
		priorityRecommendations[CategoryQuantifiable],
	}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("expected %v, got %v", want, got.Recommendations)
	}
}

func TestAggregateNoPrioritiesAboveThreshold(t *testing.T) {
	uniform := map[string]float64{}
	for _, name := range Categories {
		uniform[name] = 72
	}
	got := Aggregate(boardWith(uniform))
	if len(got.Recommendations) != 1 {
		t.Fatalf("expected only the tier statement, got %v", got.Recommendations)
	}
}

func TestAggregateLimitsToThreePriorities(t *testing.T) {
	uniform := map[string]float64{}
	for _, name := range Categories {
		uniform[name] = 10
	}
	got := Aggregate(boardWith(uniform))
	if len(got.Recommendations) != 1+priorityLimit {
		t.Fatalf("expected %d recommendations, got %v", 1+priorityLimit, got.Recommendations)
	}
}
