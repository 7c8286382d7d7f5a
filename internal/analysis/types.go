// Package analysis implements the critique pipeline: it prompts the oracle
// for an ATS assessment of resume text and parses the loosely templated
// prose response into structured results via an ordered set of tolerant
// rules. Every rule is fail-soft; a miss yields the zero value, never an
// error.
package analysis

// Result is the structured critique. All scores lie in [0,100]; collections
// are empty, never nil, so serialized output always carries {} and [].
type Result struct {
	ATSScore         int               `json:"ats_score"`
	DetailedScores   map[string]int    `json:"detailed_scores"`
	CategoryAnalysis map[string]string `json:"category_analysis"`
	Strengths        []string          `json:"strengths"`
	Improvements     []string          `json:"improvements"`
	Recommendations  []string          `json:"recommendations"`
}

// NewResult returns an empty Result with initialized collections. This is
// also the value returned when the oracle call fails outright.
func NewResult() Result {
	return Result{
		DetailedScores:   map[string]int{},
		CategoryAnalysis: map[string]string{},
		Strengths:        []string{},
		Improvements:     []string{},
		Recommendations:  []string{},
	}
}

// SimpleResult is the simplified critique contract served by the legacy
// variant of the pipeline: one score, one flat suggestion list.
type SimpleResult struct {
	ATSScore    int      `json:"ats_score"`
	Suggestions []string `json:"suggestions"`
}
