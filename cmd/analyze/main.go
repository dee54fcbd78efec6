// Package main provides a command line scorer for local resume files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score resume files from the command line",
	Long:  "Analyze extracts text from a local PDF, DOCX, or TXT resume, runs the scoring heuristics, and prints a plain-text report.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
