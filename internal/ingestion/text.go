// Package ingestion provides text normalization for raw document text
// extracted from uploaded resumes.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	blankLineRun = regexp.MustCompile(`\n\s*\n`)
	spaceRun     = regexp.MustCompile(`[ \t]+`)
)

// NormalizeText cleans raw extracted document text into the canonical form
// consumed by every downstream stage. Line endings are normalized to LF,
// runs of blank lines collapse to a single newline, and runs of spaces or
// tabs within a line collapse to a single space. The result is treated as
// immutable once produced; callers never mutate it.
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = blankLineRun.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Lines splits normalized text into its non-empty trimmed lines.
// Heuristic extraction is line-oriented and uses this view exclusively.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
