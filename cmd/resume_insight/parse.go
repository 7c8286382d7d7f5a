package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/document"
	"github.com/jonathan/resume-insight/internal/resume"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <resume.pdf>",
	Short: "Extract a structured JSON record from a PDF resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write the record to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
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

	text, links, err := extractor.ExtractFile(ctx, args[0])
	if err != nil {
		return err
	}

	body := resume.NewPipeline(oracle, nil).Run(ctx, text, links)

	if parseOutput != "" {
		return os.WriteFile(parseOutput, body, 0o644)
	}
	fmt.Println(string(body))
	return nil
}
