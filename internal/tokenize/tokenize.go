package tokenize

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into lowercase word tokens. Implementations must
// agree on ASCII alphanumeric text with standard punctuation; the engine
// never depends on which one is active.
type Tokenizer interface {
	Tokens(text string) []string
	Name() string
}

// Select returns the preferred tokenizer. The rune-class tokenizer has no
// external requirements, so selection never fails; Simple remains the
// guaranteed fallback for callers that want the cheapest path.
func Select() Tokenizer {
	return Unicode{}
}

// Unicode tokenizes by scanning rune classes: any run of letters or
// digits is a token, everything else is a separator.
type Unicode struct{}

func (Unicode) Name() string { return "unicode" }

func (Unicode) Tokens(text string) []string {
	var tokens []string
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// Simple strips punctuation, lowercases, and splits on whitespace. It is
// the fallback strategy and must stay equivalent to Unicode for ASCII
// input.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) Tokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			b.WriteByte(' ')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Fields(b.String())
}
