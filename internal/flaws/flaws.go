// internal/flaws/flaws.go

// Package flaws turns the free-text "flaws and defects" notes on a bid
// into discrete spare-part names. The text is entered by hand on the
// dashboard, so the parser accepts the separators staff actually use:
// literal "\n" sequences pasted from the scraper, real newlines, and
// forward slashes.
package flaws

import (
	"regexp"
	"strings"
)

var separator = regexp.MustCompile(`\\n|\n|/`)

// The wrench is a decorative marker staff prepend to each defect line.
const wrenchMarker = "🔧"

// Split breaks the raw defect text into trimmed, non-empty lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range separator.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Clean strips wrench markers and surrounding whitespace from a line.
func Clean(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, wrenchMarker, ""))
}

// NewPartNames parses the raw defect text and returns the cleaned part
// names that do not already exist for the bid. Matching against
// existing names is case-insensitive so a repeated transition into
// inventory derives nothing new.
func NewPartNames(text string, existingNames []string) []string {
	existing := make(map[string]struct{}, len(existingNames))
	for _, name := range existingNames {
		existing[strings.ToLower(name)] = struct{}{}
	}

	var names []string
	for _, line := range Split(text) {
		name := Clean(line)
		if name == "" {
			continue
		}
		if _, ok := existing[strings.ToLower(name)]; ok {
			continue
		}
		names = append(names, name)
	}
	return names
}
