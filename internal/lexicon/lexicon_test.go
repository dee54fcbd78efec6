package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultActionVerbs(t *testing.T) {
	lex := Default()

	assert.True(t, lex.HasActionVerb("developed"))
	assert.True(t, lex.HasActionVerb("spearheaded"))
	assert.False(t, lex.HasActionVerb("walked"))
	assert.False(t, lex.HasActionVerb("Developed"), "lookup is lowercase only")
}

func TestDefaultSectionsOrderAndCoreFlags(t *testing.T) {
	lex := Default()
	require.Len(t, lex.Sections, 6)

	var core, optional int
	for _, s := range lex.Sections {
		if s.Core {
			core++
		} else {
			optional++
		}
		require.NotEmpty(t, s.Keywords, "section %s has no keywords", s.Name)
	}
	assert.Equal(t, 4, core)
	assert.Equal(t, 2, optional)
	assert.Equal(t, "Experience", lex.Sections[0].Name)
	assert.Equal(t, "Summary", lex.Sections[3].Name)
}

func TestDefaultNumberPatterns(t *testing.T) {
	lex := Default()

	cases := []struct {
		kind  string
		text  string
		match string
	}{
		{KindPercentage, "grew revenue by 25%", "25%"},
		{KindCurrency, "saved $1,200,000 annually", "$1,200,000"},
		{KindPlus, "supported 40+ clients", "40+"},
		{KindThousands, "processed 12,500 records", "12,500"},
		{KindMagnitude, "reached 3M users", "3M"},
		{KindTimePeriod, "over 5 years of experience", "5 years"},
		{KindRange, "teams of 5 - 10 engineers", "5 - 10"},
		{KindDecimal, "uptime of 99.98 percent", "99.98"},
	}

	byKind := make(map[string]NumberPattern, len(lex.NumberPatterns))
	for _, p := range lex.NumberPatterns {
		byKind[p.Kind] = p
	}

	for _, tc := range cases {
		p, ok := byKind[tc.kind]
		require.True(t, ok, "missing pattern kind %s", tc.kind)
		assert.Equal(t, tc.match, p.Pattern.FindString(tc.text), "kind %s", tc.kind)
	}
}

func TestDefaultSkillListsNonEmptyLowercase(t *testing.T) {
	lex := Default()
	require.NotEmpty(t, lex.TechnicalSkills)
	require.NotEmpty(t, lex.SoftSkills)
	assert.Contains(t, lex.TechnicalSkills, "python")
	assert.Contains(t, lex.SoftSkills, "leadership")
}
