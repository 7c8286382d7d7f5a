package analysis

import (
	"regexp"
	"strings"
)

// suggestionLabelRule matches a line introducing a suggestion block, such
// as "Suggestions:", "Recommendation 2:" or "Improvements:".
var suggestionLabelRule = regexp.MustCompile(`(?i)^\s*(suggestion|recommendation|improvement)[^:\n]*:`)

// advisoryVerbs open sentences that read as actionable advice. Used only
// when no labelled suggestion block is present.
var advisoryVerbs = map[string]bool{
	"should":    true,
	"could":     true,
	"recommend": true,
	"suggest":   true,
	"improve":   true,
	"add":       true,
	"include":   true,
}

var sentenceSplitRule = regexp.MustCompile(`[.!?]\s+`)

// ExtractSuggestions pulls flat suggestion strings out of free-form
// critique prose for the simplified result contract. Labelled suggestion
// blocks win; when the text has none, sentences opening with an advisory
// verb are collected instead.
func ExtractSuggestions(text string) []string {
	suggestions := labelledSuggestions(text)
	if len(suggestions) > 0 {
		return suggestions
	}
	return advisorySentences(text)
}

// labelledSuggestions collects the bullet items under each suggestion
// label, stopping at the first blank line. Prose lines inside a block are
// not suggestions and are skipped.
func labelledSuggestions(text string) []string {
	suggestions := []string{}
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		match := suggestionLabelRule.FindStringIndex(lines[i])
		if match == nil {
			continue
		}

		// Text on the label line itself counts as the first suggestion.
		if rest := strings.TrimSpace(lines[i][match[1]:]); rest != "" {
			suggestions = append(suggestions, rest)
		}

		for i++; i < len(lines); i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				break
			}
			if suggestionLabelRule.MatchString(lines[i]) {
				i--
				break
			}
			if item, ok := bulletItem(line); ok {
				suggestions = append(suggestions, item)
			}
		}
	}

	return suggestions
}

// bulletItem returns the text of a bullet line ("-", "•" or "*" prefixed).
func bulletItem(line string) (string, bool) {
	for _, marker := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, marker) {
			item := strings.TrimSpace(strings.TrimPrefix(line, marker))
			return item, item != ""
		}
	}
	return "", false
}

func advisorySentences(text string) []string {
	suggestions := []string{}

	for _, sentence := range sentenceSplitRule.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		first := strings.ToLower(strings.FieldsFunc(sentence, func(r rune) bool {
			return r == ' ' || r == '\n'
		})[0])
		if advisoryVerbs[strings.TrimRight(first, ".,:;")] {
			suggestions = append(suggestions, strings.TrimRight(sentence, "."))
		}
	}

	return suggestions
}
