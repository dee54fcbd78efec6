package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resume-score/internal/engine"
	"resume-score/internal/extract"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a resume file and print a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var (
	scoreOutputFile string
	scoreAsJSON     bool
	scoreTipSeed    int64
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Write the report to a file instead of stdout")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the full assessment as JSON instead of a report")
	scoreCmd.Flags().Int64Var(&scoreTipSeed, "tip-seed", -1, "Seed for the supplementary tip; negative disables the tip")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx := context.Background()
	text, err := extract.ExtractTextFromBytes(ctx, data, "", path)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	eng := engine.New(nil, nil)
	assessment := eng.Analyze(ctx, text)
	if scoreTipSeed >= 0 {
		picker := engine.NewTipPicker(scoreTipSeed)
		assessment.Overall.Recommendations = picker.Append(assessment.Overall.Recommendations)
	}

	var out string
	if scoreAsJSON {
		encoded, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return fmt.Errorf("encode assessment: %w", err)
		}
		out = string(encoded) + "\n"
	} else {
		out = engine.RenderReport(assessment, time.Now())
	}

	if scoreOutputFile != "" {
		if err := os.WriteFile(scoreOutputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (overall %.1f)\n", scoreOutputFile, assessment.Overall.AverageScore)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
