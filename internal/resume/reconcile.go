package resume

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-insight/internal/heuristics"
)

// scalar link categories merged from classifier output into the record
var mergedCategories = []string{"github", "linkedin", "leetcode", "gfg", "portfolio"}

// Reconcile parses sanitized oracle text as a Record and merges in the
// classifier's links under a fill-if-missing rule: a heuristic URL is used
// only when the oracle left the corresponding field empty. Oracle values
// take precedence whenever present. A JSON parse failure returns a
// *MalformedOutputError carrying the sanitized text.
func Reconcile(sanitized string, links heuristics.LinkSet) (*Record, error) {
	var record Record
	if err := json.Unmarshal([]byte(sanitized), &record); err != nil {
		return nil, &MalformedOutputError{Raw: sanitized, Cause: err}
	}

	mergeProfileLinks(&record, links.Profiles)
	mergeProjectLinks(&record, links.Projects)

	return &record, nil
}

func mergeProfileLinks(record *Record, profiles map[string]string) {
	links := &record.PersonalInfo.Contact.ProfessionalLinks
	for _, category := range mergedCategories {
		url, ok := profiles[category]
		if !ok {
			continue
		}
		if field := links.slot(category); field != nil && *field == "" {
			*field = url
		}
	}
}

// mergeProjectLinks matches each extracted project entry against the
// record's projects by case-insensitive name containment in either
// direction, and fills github_repo / live_site only when empty.
func mergeProjectLinks(record *Record, projects map[string]heuristics.ProjectLinks) {
	for name, extracted := range projects {
		lowerName := strings.ToLower(name)
		for i := range record.Projects {
			project := &record.Projects[i]
			recordName := strings.ToLower(project.Name)
			if recordName == "" {
				continue
			}
			if !strings.Contains(recordName, lowerName) && !strings.Contains(lowerName, recordName) {
				continue
			}
			if extracted.GitHub != "" && project.Links.GitHubRepo == "" {
				project.Links.GitHubRepo = extracted.GitHub
			}
			if extracted.Live != "" && project.Links.LiveSite == "" {
				project.Links.LiveSite = extracted.Live
			}
		}
	}
}
