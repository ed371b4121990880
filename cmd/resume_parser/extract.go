package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured candidate data from a resume file",
	Long:  "Run the extraction pipeline over a PDF (or plain text) resume and print the result as JSON. With --save and a DATABASE_URL the result is also persisted.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAsText     bool
	extractSave       bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to the resume file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to write the result JSON (default: stdout)")
	extractCmd.Flags().BoolVar(&extractAsText, "text", false, "Treat the input as already-extracted plain text")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Persist the result to the database (requires DATABASE_URL)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	buf, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result, err := parseInput(buf)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if extractVerbose {
		pages := 0
		if !extractAsText {
			pages = ingestion.PageCount(buf)
		}
		meta := ingestion.NewMetadata(string(buf), extractInputFile, pages)
		if metaJSON, err := meta.ToJSON(); err == nil {
			fmt.Fprintf(os.Stderr, "%s\n", metaJSON)
		}
		observability.NewPrinter(os.Stderr).PrintExtractionResult(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutputFile != "" {
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	if extractSave {
		if err := saveResult(buf, result); err != nil {
			return err
		}
	}

	return nil
}

func parseInput(buf []byte) (*types.ExtractionResult, error) {
	if extractAsText {
		return extraction.ParseText(string(buf))
	}
	return extraction.Parse(buf)
}

func saveResult(buf []byte, result *types.ExtractionResult) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL required with --save")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	id, err := database.SaveResult(ctx, extractInputFile, ingestion.ComputeHash(string(buf)), result)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saved result %s\n", id)
	return nil
}
