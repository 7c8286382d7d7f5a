package llm

import "strings"

// StripCodeFence removes a leading ```json (or bare ```) fence marker and a
// trailing ``` fence marker, then trims whitespace. Models frequently wrap
// JSON in markdown fences even when told not to. The function is
// idempotent: applying it to already-clean text is a no-op.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
