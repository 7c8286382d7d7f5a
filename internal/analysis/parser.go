package analysis

import (
	"strconv"
	"strings"
)

// ParseCritique turns loosely templated critique prose into a Result.
// Parsing is tolerant: each rule that fails to match contributes its zero
// value (0 or empty collection), and no input causes an error.
func ParseCritique(text string) Result {
	result := NewResult()

	result.ATSScore = parseOverallScore(text)
	result.DetailedScores = parseDetailedScores(text)
	result.CategoryAnalysis = parseCategoryAnalysis(text)

	for _, rule := range listSectionRules {
		rule.assign(&result, parseListSection(text, rule))
	}

	return result
}

func parseOverallScore(text string) int {
	for _, rule := range overallScoreRules {
		if match := rule.FindStringSubmatch(text); match != nil {
			score, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			return clampScore(score)
		}
	}
	return 0
}

func parseDetailedScores(text string) map[string]int {
	scores := map[string]int{}
	for _, match := range detailedScoreRule.FindAllStringSubmatch(text, -1) {
		score, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		scores[strings.TrimSpace(match[1])] = clampScore(score)
	}
	return scores
}

// parseCategoryAnalysis extracts numbered `<n>. <category>: <feedback>`
// blocks. Feedback may span multiple lines; a block ends at the next
// numbered item, the next known section header, or the end of the text.
func parseCategoryAnalysis(text string) map[string]string {
	analysis := map[string]string{}

	starts := categoryItemRule.FindAllStringSubmatchIndex(text, -1)
	for i, start := range starts {
		category := strings.TrimSpace(text[start[4]:start[5]])
		bodyStart := start[1]

		bodyEnd := len(text)
		if i+1 < len(starts) {
			bodyEnd = starts[i+1][0]
		}
		for _, header := range sectionHeaders {
			if pos := strings.Index(text[bodyStart:bodyEnd], header); pos >= 0 {
				bodyEnd = bodyStart + pos
			}
		}

		feedback := strings.TrimSpace(text[bodyStart:bodyEnd])
		if category != "" && feedback != "" {
			analysis[category] = feedback
		}
	}

	return analysis
}

// parseListSection extracts the numbered items between a section header and
// its first terminator (or the end of the text).
func parseListSection(text string, rule listSectionRule) []string {
	items := []string{}

	headerPos := strings.Index(text, rule.header)
	if headerPos < 0 {
		return items
	}
	span := text[headerPos+len(rule.header):]

	end := len(span)
	for _, terminator := range rule.terminators {
		if pos := strings.Index(span, terminator); pos >= 0 && pos < end {
			end = pos
		}
	}
	span = span[:end]

	for _, match := range numberedItemRule.FindAllStringSubmatch(span, -1) {
		if item := strings.TrimSpace(match[1]); item != "" {
			items = append(items, item)
		}
	}
	return items
}
