package main

import (
	"context"

	"github.com/jonathan/resume-insight/internal/llm"
)

// newOracle builds the Gemini client from the effective configuration.
func newOracle(ctx context.Context) (llm.Client, error) {
	oracleConfig := llm.DefaultConfig()
	oracleConfig.Model = cfg.Model
	oracleConfig.Timeout = cfg.OracleTimeout
	oracleConfig.MaxRetries = cfg.OracleMaxRetries

	return llm.NewGeminiClient(ctx, oracleConfig, cfg.APIKey)
}
