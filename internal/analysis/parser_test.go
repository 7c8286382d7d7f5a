package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCritique = `Overall ATS Score: 73

Detailed Scores:
- Content Quality: 80/100 (15% weight)
- Format: 55/100
- Keywords Optimization: 62/100

Category Analysis:
1. Content Quality: Strong quantified achievements throughout.
Bullet points read well and carry metrics.
2. Format: Tables and multi-column layout hurt machine readability.

Key Strengths:
1. Clear quantified impact in the experience section
2. Consistent date formatting

Areas for Improvement:
1. Replace tables with plain single-column text
2. Add a summary section

Actionable Recommendations:
1. Export as text-based PDF instead of scanned images
2. Mirror keywords from the target job description

Note: Scores are indicative, not a guarantee of ATS behavior.`

func TestParseCritique_OverallScore(t *testing.T) {
	result := ParseCritique(sampleCritique)
	assert.Equal(t, 73, result.ATSScore)
}

func TestParseCritique_OverallScoreFallback(t *testing.T) {
	result := ParseCritique("The resume earns 68 out of 100 overall.")
	assert.Equal(t, 68, result.ATSScore)
}

func TestParseCritique_OverallScoreMissing(t *testing.T) {
	result := ParseCritique("No numbers here at all.")
	assert.Equal(t, 0, result.ATSScore)
}

func TestParseCritique_OverallScoreClamped(t *testing.T) {
	result := ParseCritique("Overall ATS Score: 140")
	assert.Equal(t, 100, result.ATSScore)
}

func TestParseCritique_DetailedScores(t *testing.T) {
	result := ParseCritique(sampleCritique)

	assert.Equal(t, map[string]int{
		"Content Quality":       80,
		"Format":                55,
		"Keywords Optimization": 62,
	}, result.DetailedScores)
}

func TestParseCritique_CategoryAnalysis(t *testing.T) {
	result := ParseCritique(sampleCritique)

	require.Contains(t, result.CategoryAnalysis, "Content Quality")
	require.Contains(t, result.CategoryAnalysis, "Format")

	// Multi-line feedback is kept whole, bounded by the next numbered item.
	assert.Equal(t,
		"Strong quantified achievements throughout.\nBullet points read well and carry metrics.",
		result.CategoryAnalysis["Content Quality"])
	// The last block stops at the next section header.
	assert.Equal(t,
		"Tables and multi-column layout hurt machine readability.",
		result.CategoryAnalysis["Format"])
}

func TestParseCritique_ListSections(t *testing.T) {
	result := ParseCritique(sampleCritique)

	assert.Equal(t, []string{
		"Clear quantified impact in the experience section",
		"Consistent date formatting",
	}, result.Strengths)
	assert.Equal(t, []string{
		"Replace tables with plain single-column text",
		"Add a summary section",
	}, result.Improvements)
	// Recommendations stop before the trailing note.
	assert.Equal(t, []string{
		"Export as text-based PDF instead of scanned images",
		"Mirror keywords from the target job description",
	}, result.Recommendations)
}

func TestParseCritique_EmptyInput(t *testing.T) {
	result := ParseCritique("")

	assert.Equal(t, 0, result.ATSScore)
	assert.Empty(t, result.DetailedScores)
	assert.Empty(t, result.CategoryAnalysis)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Improvements)
	assert.Empty(t, result.Recommendations)

	// Collections stay non-nil so serialization emits {} and [].
	assert.NotNil(t, result.DetailedScores)
	assert.NotNil(t, result.Strengths)
}

func TestParseCritique_PartialResponse(t *testing.T) {
	partial := "Overall ATS Score: 73\n- Content Quality: 80/100\n- Format: 55/100"

	result := ParseCritique(partial)

	assert.Equal(t, 73, result.ATSScore)
	assert.Equal(t, map[string]int{"Content Quality": 80, "Format": 55}, result.DetailedScores)
	assert.Empty(t, result.Strengths)
}

func TestParseCritique_DetailedScoreClamped(t *testing.T) {
	result := ParseCritique("- Format: 250/100")
	assert.Equal(t, 100, result.DetailedScores["Format"])
}

func TestParseCritique_Deterministic(t *testing.T) {
	first := ParseCritique(sampleCritique)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ParseCritique(sampleCritique))
	}
}
