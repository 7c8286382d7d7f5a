package analysis

import "regexp"

// The critique parser is driven by the declarative tables below rather
// than inline matching, so each rule is unit-testable on its own.

// overallScoreRules are tried in order; the first pattern with a match
// supplies the overall score. Group 1 must capture the integer.
var overallScoreRules = []*regexp.Regexp{
	regexp.MustCompile(`Overall ATS Score:\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*out of 100`),
}

// detailedScoreRule matches one `- <category>: <int>/100` line. Group 1 is
// the category label, group 2 the score.
var detailedScoreRule = regexp.MustCompile(`(?m)^-\s*([^:\n]+):\s*(\d+)/100`)

// categoryItemRule matches the start of one numbered category block,
// `<n>. <category>:`. The feedback body runs from the end of this match to
// the next block start, the next known section header, or end of text
// (RE2 has no lookahead, so bounding is done by index scanning).
var categoryItemRule = regexp.MustCompile(`(?m)^(\d+)\.\s+([^:\n]+):`)

// sectionHeaders are the named headers that terminate a category block.
var sectionHeaders = []string{
	"Key Strengths:",
	"Areas for Improvement:",
	"Actionable Recommendations:",
	"Note:",
}

// listSectionRule describes one named list section: the span between its
// header and the first terminator found (or end of text), with numbered
// items extracted from the span.
type listSectionRule struct {
	header      string
	terminators []string
	assign      func(*Result, []string)
}

var listSectionRules = []listSectionRule{
	{
		header:      "Key Strengths:",
		terminators: []string{"Areas for Improvement:"},
		assign:      func(r *Result, items []string) { r.Strengths = items },
	},
	{
		header:      "Areas for Improvement:",
		terminators: []string{"Actionable Recommendations:"},
		assign:      func(r *Result, items []string) { r.Improvements = items },
	},
	{
		header:      "Actionable Recommendations:",
		terminators: []string{"Note:"},
		assign:      func(r *Result, items []string) { r.Recommendations = items },
	},
}

// numberedItemRule extracts one `<n>. <text>` list entry.
var numberedItemRule = regexp.MustCompile(`\d+\.\s*([^\n]+)`)

// clampScore bounds a parsed score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
