package engine

import (
	"fmt"
	"strings"
	"time"
)

const reportTimeLayout = "2006-01-02 15:04:05"

// RenderReport formats an assessment as the downloadable plain-text
// report. Given identical inputs and timestamp the output is
// byte-for-byte reproducible.
func RenderReport(a Assessment, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("RESUME ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format(reportTimeLayout))
	b.WriteString("\n")
	fmt.Fprintf(&b, "OVERALL SCORE: %.0f/100\n", a.Overall.AverageScore)
	b.WriteString("\n")

	b.WriteString("DETAILED SCORES:\n")
	for _, cs := range a.Scores {
		fmt.Fprintf(&b, "• %s: %.0f/100\n", cs.Category, cs.Score)
	}
	b.WriteString("\n")

	b.WriteString("RECOMMENDATIONS:\n")
	for _, rec := range a.Overall.Recommendations {
		fmt.Fprintf(&b, "• %s\n", rec)
	}
	b.WriteString("\n")

	b.WriteString("DETAILED FEEDBACK:\n")
	for _, cs := range a.Scores {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(cs.Category))
		for _, line := range a.Results[cs.Category].Feedback {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	return b.String()
}
