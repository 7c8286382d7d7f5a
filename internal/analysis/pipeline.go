package analysis

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/prompts"
)

// Pipeline runs the critique flow: prompt the oracle with the scoring
// rubric, then parse its prose answer into structured results.
type Pipeline struct {
	oracle llm.Client
}

// NewPipeline creates a critique pipeline backed by the given oracle.
func NewPipeline(oracle llm.Client) *Pipeline {
	return &Pipeline{oracle: oracle}
}

// Analyze scores the resume text and returns the structured critique. An
// oracle failure degrades to the zero-valued Result; parse misses degrade
// to zero scores and empty collections. It never returns an error.
func (p *Pipeline) Analyze(ctx context.Context, rawText string) Result {
	critique, ok := p.critique(ctx, rawText)
	if !ok {
		return NewResult()
	}
	return ParseCritique(critique)
}

// AnalyzeSimple scores the resume text and returns the simplified
// critique: overall score plus a flat suggestion list.
func (p *Pipeline) AnalyzeSimple(ctx context.Context, rawText string) SimpleResult {
	critique, ok := p.critique(ctx, rawText)
	if !ok {
		return SimpleResult{Suggestions: []string{}}
	}
	return SimpleResult{
		ATSScore:    parseOverallScore(critique),
		Suggestions: ExtractSuggestions(critique),
	}
}

// BuildPrompt composes the critique prompt for the given resume text.
func BuildPrompt(normalizedText string) string {
	template := prompts.MustGet("analysis.json", "ats-critique")
	return prompts.Format(template, map[string]string{"ResumeText": normalizedText})
}

func (p *Pipeline) critique(ctx context.Context, rawText string) (string, bool) {
	text := ingestion.NormalizeText(rawText)

	response, err := p.oracle.Generate(ctx, BuildPrompt(text))
	if err != nil {
		log.Error().Err(err).Msg("critique oracle call failed")
		return "", false
	}

	return llm.StripCodeFence(response), true
}
