package document

import (
	"regexp"
	"strings"
)

// uriAnnotation matches the /URI entry of a PDF link annotation with a
// literal string target. Escaped characters (including "\)") are part of
// the target; hex-encoded targets are rare in resume exports and are
// skipped.
var uriAnnotation = regexp.MustCompile(`/URI\s*\(\s*((?:\\.|[^)\\])+?)\s*\)`)

// ExtractLinks scans raw PDF bytes for link-annotation targets and
// returns the web URLs in document order, deduplicated. Extraction is
// best-effort and never fails: unreadable or link-free documents yield an
// empty list.
func ExtractLinks(raw []byte) []string {
	links := []string{}
	seen := map[string]bool{}

	for _, match := range uriAnnotation.FindAllSubmatch(raw, -1) {
		url := unescapeLiteral(string(match[1]))
		if !isWebURL(url) || seen[url] {
			continue
		}
		seen[url] = true
		links = append(links, url)
	}

	return links
}

// unescapeLiteral resolves the escape sequences allowed inside a PDF
// literal string that can occur in URLs.
func unescapeLiteral(s string) string {
	replacer := strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`)
	return replacer.Replace(s)
}

func isWebURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}
