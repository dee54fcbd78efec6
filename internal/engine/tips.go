package engine

import "math/rand"

// Supplementary tips shown alongside recommendations. They never feed
// back into scores or the deterministic recommendation list.
var tips = []string{
	"Tailor your resume to each job description",
	"Keep your most relevant experience on the first page",
	"Use the same keywords the job posting uses",
	"Proofread twice; typos are the fastest rejection",
	"Lead every bullet with a strong action verb",
	"Quantify outcomes, not responsibilities",
	"Drop outdated skills to make room for current ones",
}

// TipPicker selects a supplementary tip from a fixed pool. It is seeded
// explicitly so tests can pin the selection.
type TipPicker struct {
	r *rand.Rand
}

// NewTipPicker constructs a TipPicker with the given seed.
func NewTipPicker(seed int64) *TipPicker {
	return &TipPicker{r: rand.New(rand.NewSource(seed))}
}

// Pick returns one tip.
func (p *TipPicker) Pick() string {
	return tips[p.r.Intn(len(tips))]
}

// Append returns a new slice with one tip appended to the given
// recommendations. The input slice is left untouched.
func (p *TipPicker) Append(recommendations []string) []string {
	out := make([]string, 0, len(recommendations)+1)
	out = append(out, recommendations...)
	return append(out, "Tip: "+p.Pick())
}
