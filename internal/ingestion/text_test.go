package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_CollapseBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\nLine 2"
	result := NormalizeText(input)

	assert.Equal(t, "Line 1\nLine 2", result)
}

func TestNormalizeText_CollapseSpaces(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := NormalizeText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestNormalizeText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := NormalizeText(input)

	assert.NotContains(t, result, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestNormalizeText_TrimsLineEdges(t *testing.T) {
	input := "  padded line  \n\ttabbed line\t"
	result := NormalizeText(input)

	assert.Equal(t, "padded line\ntabbed line", result)
}

func TestNormalizeText_Deterministic(t *testing.T) {
	input := "Jane   Doe\r\n\r\nAustin,  TX\n\n\njane@x.com"
	assert.Equal(t, NormalizeText(input), NormalizeText(input))
}

func TestNormalizeText_Idempotent(t *testing.T) {
	input := "Jane   Doe\r\n\r\nAustin,  TX\n\n\njane@x.com"
	once := NormalizeText(input)
	assert.Equal(t, once, NormalizeText(once))
}

func TestNormalizeText_EmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeText(""))
	assert.Empty(t, NormalizeText("   \n  \n  "))
}

func TestNormalizeText_SpecialCharacters(t *testing.T) {
	input := "Résumé with émojis 🚀 and spéciàl chàracters"
	result := NormalizeText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
}

func TestLines_SkipsEmptyLines(t *testing.T) {
	lines := Lines("Jane Doe\n\nAustin, TX\n   \njane@x.com")

	assert.Equal(t, []string{"Jane Doe", "Austin, TX", "jane@x.com"}, lines)
}

func TestLines_EmptyInput(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n\n"))
}
