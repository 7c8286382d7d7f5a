// Package heuristics derives resume facts locally, independent of the
// generative model: hyperlink classification and positional field extraction.
// Every rule is best-effort; a rule that matches nothing contributes nothing
// and never fails the caller.
package heuristics

import "strings"

// DefaultProjectNames is the known-project list used to bucket hyperlinks
// that do not match any profile category.
var DefaultProjectNames = []string{"workify", "school management", "food delivery"}

// ProjectLinks holds the classified links for a single project.
type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Live   string `json:"live,omitempty"`
}

// LinkSet is the result of classifying a document's hyperlinks: profile
// categories map to a single URL, project names map to a github/live pair.
type LinkSet struct {
	Profiles map[string]string
	Projects map[string]ProjectLinks
}

// Empty reports whether classification produced no links at all.
func (ls LinkSet) Empty() bool {
	return len(ls.Profiles) == 0 && len(ls.Projects) == 0
}

// profileRule is one entry in the ordered classification table. Rules are
// applied top to bottom against the lowercased URL; the first hit wins.
type profileRule struct {
	category string
	keywords []string
}

var profileRules = []profileRule{
	{category: "github", keywords: []string{"github.com"}},
	{category: "linkedin", keywords: []string{"linkedin.com"}},
	{category: "leetcode", keywords: []string{"leetcode.com"}},
	{category: "gfg", keywords: []string{"geeksforgeeks.org", "gfg"}},
	{category: "portfolio", keywords: []string{"portfolio", "personal"}},
}

// ClassifyLinks buckets raw hyperlink URLs into profile categories or
// project sub-records. Unmatched URLs are dropped. Classification is total
// and deterministic; duplicate hits on the same slot are last-write-wins.
func ClassifyLinks(urls []string, projectNames []string) LinkSet {
	result := LinkSet{
		Profiles: make(map[string]string),
		Projects: make(map[string]ProjectLinks),
	}

	for _, url := range urls {
		lower := strings.ToLower(url)

		if category, ok := matchProfile(lower); ok {
			result.Profiles[category] = url
			continue
		}

		for _, project := range projectNames {
			token := strings.ReplaceAll(strings.ToLower(project), " ", "")
			if token == "" || !strings.Contains(lower, token) {
				continue
			}
			links := result.Projects[project]
			if strings.Contains(lower, "github.com") {
				links.GitHub = url
			} else {
				links.Live = url
			}
			result.Projects[project] = links
		}
	}

	return result
}

func matchProfile(lowerURL string) (string, bool) {
	for _, rule := range profileRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowerURL, keyword) {
				return rule.category, true
			}
		}
	}
	return "", false
}
