// Package main provides the entry point for the resume parser CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume Parser CLI and HTTP API Server",
	Long:  "Resume Parser reconstructs structured candidate data (identity, work history, education, skills) from PDF resumes using heuristic text extraction, with a confidence score for how much structure was recovered.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
