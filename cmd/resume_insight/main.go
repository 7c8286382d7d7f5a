// Package main provides the entry point for the Resume Insight service
// and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/logging"
)

var (
	configPath string

	// cfg is the effective configuration, loaded before any subcommand
	// runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume Insight extraction and critique service",
	Long: "Resume Insight extracts structured JSON records from PDF resumes and " +
		"scores them against ATS criteria using a combination of deterministic " +
		"heuristics and the Gemini API.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
