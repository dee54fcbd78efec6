package engine

import (
	"fmt"
	"strings"
	"testing"

	"resume-score/internal/lexicon"
	"resume-score/internal/tokenize"
)

func TestActionVerbsScoring(t *testing.T) {
	lex := lexicon.Default()
	tok := tokenize.Select()

	// 3 unique verbs, 4 total occurrences: 3*8 + 4*2 = 32.
	text := "Developed a tool. Developed a service. Led the team. Improved latency."
	res := ActionVerbs(lex, tok, text)
	if res.Score != 32 {
		t.Fatalf("expected score 32, got %.1f", res.Score)
	}
	if res.Detail["variety"] != 3 || res.Detail["usage"] != 4 {
		t.Fatalf("unexpected detail: %v", res.Detail)
	}
}

func TestActionVerbsCaps(t *testing.T) {
	lex := lexicon.Default()
	tok := tokenize.Select()

	verbs := []string{
		"achieved", "analyzed", "built", "created", "designed", "developed",
		"enhanced", "established", "executed", "generated", "implemented", "improved",
	}
	text := strings.Join(verbs, " ") + " " + strings.Join(verbs, " ")
	res := ActionVerbs(lex, tok, text)
	// Variety capped at 70, usage (24) capped at 30.
	if res.Score != 100 {
		t.Fatalf("expected capped 100, got %.1f", res.Score)
	}
}

func TestActionVerbsMonotonicity(t *testing.T) {
	lex := lexicon.Default()
	tok := tokenize.Select()

	base := "Developed two services and led a team."
	prev := ActionVerbs(lex, tok, base).Score
	text := base
	for _, verb := range []string{"improved", "launched", "managed", "optimized", "organized", "reduced"} {
		text = text + " " + verb
		got := ActionVerbs(lex, tok, text).Score
		if got < prev {
			t.Fatalf("adding %q decreased score from %.1f to %.1f", verb, prev, got)
		}
		prev = got
	}
}

func TestActionVerbsTierLines(t *testing.T) {
	lex := lexicon.Default()
	tok := tokenize.Select()

	limited := ActionVerbs(lex, tok, "developed things")
	if !strings.Contains(limited.Feedback[0], "Limited action verb variety (1 unique)") {
		t.Fatalf("expected limited tier, got %v", limited.Feedback)
	}
	if !containsLine(limited.Feedback, "Consider using more impactful action verbs") {
		t.Fatalf("expected improvement hint, got %v", limited.Feedback)
	}

	good := ActionVerbs(lex, tok, "achieved analyzed built created designed developed")
	if !strings.Contains(good.Feedback[0], "Good use of action verbs (6 unique)") {
		t.Fatalf("expected good tier, got %v", good.Feedback)
	}
}

func TestActionVerbsTopFrequencyTieBreak(t *testing.T) {
	lex := lexicon.Default()
	tok := tokenize.Select()

	// "led" appears first with the same count as "built"; stable ranking
	// must keep first-seen order among equal counts.
	text := "led built led built developed"
	res := ActionVerbs(lex, tok, text)

	top, ok := res.Detail["topVerbs"].([]VerbCount)
	if !ok {
		t.Fatalf("expected topVerbs detail, got %T", res.Detail["topVerbs"])
	}
	want := []VerbCount{{"led", 2}, {"built", 2}, {"developed", 1}}
	if fmt.Sprint(top) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, top)
	}
}
