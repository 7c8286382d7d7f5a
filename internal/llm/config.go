// Package llm provides the text-generation oracle abstraction and its
// Gemini implementation. The oracle is consumed as an opaque text-in /
// text-out capability so pipelines can swap in deterministic doubles.
package llm

import "time"

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// Config holds generation parameters for oracle calls.
type Config struct {
	Model           string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32

	// Reliability bounds for the single external call each pipeline makes.
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// DefaultConfig returns the default generation configuration. Low
// temperature keeps extraction output consistent across runs.
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		Temperature:     0.1,
		TopP:            1,
		TopK:            1,
		MaxOutputTokens: 2048,
		Timeout:         60 * time.Second,
		MaxRetries:      2,
		RetryBaseDelay:  500 * time.Millisecond,
	}
}
