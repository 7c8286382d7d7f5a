package resume

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/heuristics"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/schemas"
)

// Pipeline runs the full resume-extraction flow for one document. Each
// request gets its own run; there is no shared mutable state.
type Pipeline struct {
	oracle       llm.Client
	projectNames []string
}

// NewPipeline creates an extraction pipeline backed by the given oracle.
// A nil projectNames slice selects the default known-project list.
func NewPipeline(oracle llm.Client, projectNames []string) *Pipeline {
	if projectNames == nil {
		projectNames = heuristics.DefaultProjectNames
	}
	return &Pipeline{
		oracle:       oracle,
		projectNames: projectNames,
	}
}

// Run converts raw document text and its hyperlinks into the serialized
// response body: a pretty-printed Record on success, a Failure object on
// any stage failure. It never returns an error to the caller; every
// failure resolves to a diagnostic JSON value.
func (p *Pipeline) Run(ctx context.Context, rawText string, hyperlinks []string) []byte {
	text := ingestion.NormalizeText(rawText)

	links := heuristics.ClassifyLinks(hyperlinks, p.projectNames)
	info := heuristics.ExtractBasicInfo(ingestion.Lines(text))

	prompt := BuildPrompt(text, links, info)

	response, err := p.oracle.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("resume extraction oracle call failed")
		return marshal(Failure{
			Error:   "Failed to process resume",
			Details: err.Error(),
		})
	}

	sanitized := llm.StripCodeFence(response)

	record, err := Reconcile(sanitized, links)
	if err != nil {
		var malformed *MalformedOutputError
		if errors.As(err, &malformed) {
			log.Warn().Err(err).Msg("oracle returned unparsable resume JSON")
			return marshal(Failure{
				Error:       "Failed to parse resume data",
				Details:     malformed.Cause.Error(),
				RawResponse: malformed.Raw,
			})
		}
		return marshal(Failure{
			Error:   "Failed to process resume",
			Details: err.Error(),
		})
	}

	body := marshal(record)

	if err := schemas.ValidateResumeRecord(body); err != nil {
		// Shape drift in oracle output is logged, not rejected; semantic
		// correctness of the oracle is out of contract.
		log.Warn().Err(err).Msg("reconciled record does not conform to schema")
	}

	return body
}

func marshal(v any) []byte {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return []byte(`{"error": "Failed to process resume", "details": "internal serialization failure"}`)
	}
	return body
}
