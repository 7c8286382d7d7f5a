package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/document"
)

var scoreSimple bool

var scoreCmd = &cobra.Command{
	Use:   "score <resume.pdf>",
	Short: "Score a PDF resume against ATS criteria",
	RunE:  runScore,
	Args:  cobra.ExactArgs(1),
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreSimple, "simple", false, "Return only the overall score and suggestions")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	oracle, err := newOracle(ctx)
	if err != nil {
		return fmt.Errorf("failed to create oracle client: %w", err)
	}
	defer oracle.Close()

	extractor, err := document.NewExtractor(ctx)
	if err != nil {
		return fmt.Errorf("failed to create document extractor: %w", err)
	}

	text, _, err := extractor.ExtractFile(ctx, args[0])
	if err != nil {
		return err
	}

	pipeline := analysis.NewPipeline(oracle)

	var result any
	if scoreSimple {
		result = pipeline.AnalyzeSimple(ctx, text)
	} else {
		result = pipeline.Analyze(ctx, text)
	}

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	fmt.Println(string(body))
	return nil
}
