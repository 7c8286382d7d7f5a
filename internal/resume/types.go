// Package resume implements the resume-extraction pipeline: prompt
// composition, oracle invocation, response sanitization, and reconciliation
// of oracle output with heuristically derived facts.
package resume

// Record is the structured resume produced by the extraction pipeline.
// Section keys are always serialized; missing sections are null or empty,
// never omitted. Records are created fresh per request and never mutated
// after being returned.
type Record struct {
	PersonalInfo              PersonalInfo `json:"personal_info"`
	Education                 []Education  `json:"education"`
	Skills                    Skills       `json:"skills"`
	Experience                []Experience `json:"experience"`
	Projects                  []Project    `json:"projects"`
	Achievements              []string     `json:"achievements"`
	PositionsOfResponsibility []string     `json:"positions_of_responsibility"`
}

// PersonalInfo holds identity and contact details.
type PersonalInfo struct {
	FullName string  `json:"full_name"`
	Location string  `json:"location"`
	Contact  Contact `json:"contact"`
}

// Contact holds phone, email and the fixed professional link slots.
type Contact struct {
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	ProfessionalLinks ProfessionalLinks `json:"professional_links"`
}

// ProfessionalLinks is the fixed set of recognized profile URLs.
type ProfessionalLinks struct {
	GitHub     string `json:"github"`
	LeetCode   string `json:"leetcode"`
	LinkedIn   string `json:"linkedin"`
	GFG        string `json:"gfg"`
	Portfolio  string `json:"portfolio"`
	CodeChef   string `json:"codechef"`
	HackerRank string `json:"hackerrank"`
	Website    string `json:"website"`
}

// slot returns a pointer to the link field for a classifier category, or
// nil for categories the record does not track.
func (p *ProfessionalLinks) slot(category string) *string {
	switch category {
	case "github":
		return &p.GitHub
	case "leetcode":
		return &p.LeetCode
	case "linkedin":
		return &p.LinkedIn
	case "gfg":
		return &p.GFG
	case "portfolio":
		return &p.Portfolio
	default:
		return nil
	}
}

// Education is one degree entry.
type Education struct {
	Degree          string `json:"degree"`
	Institute       string `json:"institute"`
	BoardUniversity string `json:"board_university"`
	Score           string `json:"score"`
	Year            string `json:"year"`
}

// Skills buckets technologies by area.
type Skills struct {
	ProgrammingLanguages        []string `json:"programming_languages"`
	FrontendTechnologies        []string `json:"frontend_technologies"`
	BackendTechnologies         []string `json:"backend_technologies"`
	VersionControlDeployment    []string `json:"version_control_deployment"`
	ComputerScienceFundamentals []string `json:"computer_science_fundamentals"`
}

// Experience is one employment entry.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Achievements []string `json:"achievements"`
}

// Project is one project entry with its live/repository links.
type Project struct {
	Name         string       `json:"name"`
	Technologies []string     `json:"technologies"`
	Links        ProjectLinks `json:"links"`
	Achievements []string     `json:"achievements"`
}

// ProjectLinks holds a project's deployment and repository URLs.
type ProjectLinks struct {
	LiveSite   string `json:"live_site"`
	GitHubRepo string `json:"github_repo"`
}

// Failure is the diagnostic record returned when a pipeline stage fails.
// It is serialized to the client in place of a Record; no failure in the
// pipeline ever escapes as an uncaught fault.
type Failure struct {
	Error       string `json:"error"`
	Details     string `json:"details"`
	RawResponse string `json:"raw_response,omitempty"`
	Path        string `json:"path,omitempty"`
}
