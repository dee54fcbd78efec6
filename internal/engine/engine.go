package engine

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-score/internal/lexicon"
	"resume-score/internal/tokenize"
)

// Engine runs the six category analyzers and the aggregator. Analyzers
// share only the immutable lexicon and the stateless tokenizer, so runs
// are safe to execute concurrently.
type Engine struct {
	lex *lexicon.Lexicon
	tok tokenize.Tokenizer
}

// New constructs an Engine. Nil arguments fall back to the canonical
// lexicon and the preferred tokenizer.
func New(lex *lexicon.Lexicon, tok tokenize.Tokenizer) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	if tok == nil {
		tok = tokenize.Select()
	}
	return &Engine{lex: lex, tok: tok}
}

// Analyze runs all analyzers on the text and aggregates the results.
// Empty or whitespace-only text short-circuits to an all-zero board with
// no feedback and no recommendations; well-formed text never fails.
func (e *Engine) Analyze(ctx context.Context, text string) Assessment {
	if strings.TrimSpace(text) == "" {
		return emptyAssessment()
	}

	results := make([]CategoryResult, len(Categories))
	analyzers := []func(string) CategoryResult{
		ContactInfo,
		func(t string) CategoryResult { return Sections(e.lex, t) },
		func(t string) CategoryResult { return ActionVerbs(e.lex, e.tok, t) },
		func(t string) CategoryResult { return QuantifiableResults(e.lex, t) },
		func(t string) CategoryResult { return Skills(e.lex, t) },
		LengthFormat,
	}

	g, _ := errgroup.WithContext(ctx)
	for i, analyze := range analyzers {
		g.Go(func() error {
			results[i] = analyze(text)
			return nil
		})
	}
	// Analyzers never return errors; Wait is the join point.
	_ = g.Wait()

	board := make(ScoreBoard, len(Categories))
	byCategory := make(map[string]CategoryResult, len(Categories))
	for i, name := range Categories {
		board[i] = CategoryScore{Category: name, Score: results[i].Score}
		byCategory[name] = results[i]
	}

	return Assessment{
		Scores:  board,
		Results: byCategory,
		Overall: Aggregate(board),
	}
}

func emptyAssessment() Assessment {
	board := make(ScoreBoard, len(Categories))
	byCategory := make(map[string]CategoryResult, len(Categories))
	for i, name := range Categories {
		board[i] = CategoryScore{Category: name, Score: 0}
		byCategory[name] = CategoryResult{Score: 0}
	}
	return Assessment{
		Scores:  board,
		Results: byCategory,
		Overall: OverallAssessment{AverageScore: 0, Tier: "", Recommendations: nil},
	}
}
