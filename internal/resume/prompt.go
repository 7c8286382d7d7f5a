package resume

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/heuristics"
	"github.com/jonathan/resume-insight/internal/prompts"
)

// BuildPrompt assembles the extraction instruction sent to the oracle: the
// fixed schema template, then any pre-extracted hints, then the document
// text. Pure and deterministic given identical inputs.
func BuildPrompt(normalizedText string, links heuristics.LinkSet, info heuristics.BasicInfo) string {
	var sb strings.Builder
	sb.WriteString(prompts.MustGet("resume.json", "extract-record"))

	writeBasicInfoHints(&sb, info)
	writeLinkHints(&sb, links)

	sb.WriteString("\n\nRESUME TEXT:\n")
	sb.WriteString(normalizedText)

	return sb.String()
}

func writeBasicInfoHints(sb *strings.Builder, info heuristics.BasicInfo) {
	var hints []string
	if info.FullName != "" {
		hints = append(hints, "full_name: "+info.FullName)
	}
	if info.Location != "" {
		hints = append(hints, "location: "+info.Location)
	}
	if info.Phone != "" {
		hints = append(hints, "phone: "+info.Phone)
	}
	if info.Email != "" {
		hints = append(hints, "email: "+info.Email)
	}
	if len(info.ProfessionalLinks) > 0 {
		hints = append(hints, "professional_links: "+marshalSorted(info.ProfessionalLinks))
	}

	if len(hints) == 0 {
		return
	}

	sb.WriteString("\n\nPRE-EXTRACTED INFORMATION:\n")
	for _, hint := range hints {
		sb.WriteString(hint)
		sb.WriteString("\n")
	}
}

func writeLinkHints(sb *strings.Builder, links heuristics.LinkSet) {
	if links.Empty() {
		return
	}

	sb.WriteString("\n\nEXTRACTED LINKS FROM PDF:\n")

	for _, category := range sortedKeys(links.Profiles) {
		fmt.Fprintf(sb, "%s: %s\n", category, links.Profiles[category])
	}
	for _, name := range sortedKeys(links.Projects) {
		payload, _ := json.Marshal(links.Projects[name])
		fmt.Fprintf(sb, "%s: %s\n", name, payload)
	}
}

// marshalSorted renders a string map as JSON; encoding/json sorts map keys,
// which keeps the prompt deterministic.
func marshalSorted(m map[string]string) string {
	payload, _ := json.Marshal(m)
	return string(payload)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
