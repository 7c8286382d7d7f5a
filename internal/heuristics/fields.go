package heuristics

import (
	"regexp"
	"strings"
)

// BasicInfo holds the fields derived positionally from the resume text.
// It is advisory, not authoritative: unmatched fields stay empty and are
// omitted from serialized output rather than defaulted.
type BasicInfo struct {
	FullName          string            `json:"full_name,omitempty"`
	Location          string            `json:"location,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Email             string            `json:"email,omitempty"`
	ProfessionalLinks map[string]string `json:"professional_links,omitempty"`
}

var (
	phonePattern = regexp.MustCompile(`(\+\d{1,4}-\d{10})`)
	emailPattern = regexp.MustCompile(`([a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+)`)
)

// pipe-line segments are classified by keyword containment, in this order
var segmentCategories = []string{"github", "linkedin", "leetcode", "portfolio", "gfg"}

// ExtractBasicInfo derives name, location and contact fields from the
// non-empty trimmed lines of normalized resume text. The first line is the
// name, the second the location. Phone and email are scanned across every
// line and the last match wins; a line containing a pipe delimiter rebuilds
// the professional-links map from scratch, so a later pipe-line fully
// replaces an earlier one. Both behaviors are kept for compatibility with
// the upstream extractor.
func ExtractBasicInfo(lines []string) BasicInfo {
	var info BasicInfo

	if len(lines) > 0 {
		info.FullName = lines[0]
	}
	if len(lines) > 1 {
		info.Location = lines[1]
	}

	for _, line := range lines {
		if m := phonePattern.FindString(line); m != "" {
			info.Phone = m
		}
		if m := emailPattern.FindString(line); m != "" {
			info.Email = m
		}
		if strings.Contains(line, "|") {
			info.ProfessionalLinks = classifySegments(strings.Split(line, "|"))
		}
	}

	return info
}

func classifySegments(segments []string) map[string]string {
	links := make(map[string]string)
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		lower := strings.ToLower(segment)
		for _, category := range segmentCategories {
			if strings.Contains(lower, category) {
				links[category] = segment
				break
			}
		}
	}
	return links
}
