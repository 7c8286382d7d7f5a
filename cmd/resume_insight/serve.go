package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/document"
	"github.com/jonathan/resume-insight/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the resume extraction and critique endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()

	oracle, err := newOracle(ctx)
	if err != nil {
		return fmt.Errorf("failed to create oracle client: %w", err)
	}

	extractor, err := document.NewExtractor(ctx)
	if err != nil {
		oracle.Close()
		return fmt.Errorf("failed to create document extractor: %w", err)
	}

	srv, err := server.New(cfg, oracle, extractor)
	if err != nil {
		oracle.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
