package sds

import (
	"regexp"
	"strings"
)

var (
	// A section header opens with an optional "section" word and a one- or
	// two-digit number followed by punctuation or space: "3.", "Section 1:".
	sectionNumberPattern = regexp.MustCompile(`^(?:section\s*)?\d{1,2}[.:\- ]+`)

	// Override for the frequently malformed first-aid header. Evaluated after
	// the keyword rule and wins over it when both match.
	firstAidPattern = regexp.MustCompile(`(?i)^(?:section\s+)?4[.:]?\s`)
)

const firstAidPhrase = "First Aid Measures"

// Segmenter splits a document's full text into named sections using keyword
// driven header detection.
type Segmenter struct {
	lookup []keywordEntry
}

// NewSegmenter creates a segmenter for the given keyword configuration.
func NewSegmenter(keywords SectionKeywords) *Segmenter {
	return &Segmenter{lookup: keywords.lookupTable()}
}

// matchHeader reports the section id a line's header selects, or "" when the
// line is not a header. Two rules run in fixed order: the general numbered
// header rule, then the hard-coded first-aid override, which replaces any
// id the general rule produced.
func (s *Segmenter) matchHeader(line string) string {
	trimmed := strings.TrimSpace(line)
	normalized := strings.ToLower(trimmed)

	var matched string
	if sectionNumberPattern.MatchString(normalized) {
		for _, entry := range s.lookup {
			if strings.Contains(normalized, entry.keyword) {
				matched = entry.sectionID
				break
			}
		}
	}

	if firstAidPattern.MatchString(trimmed) || strings.Contains(line, firstAidPhrase) {
		matched = SectionFirstAid
	}

	return matched
}

// Segment scans the document's lines in order and returns a map from section
// id to that section's text. The first committed run for an id wins; a later
// header mapping to an already committed id never overwrites it. Lines before
// the first recognized header belong to no section and are dropped.
func (s *Segmenter) Segment(text string) map[string]string {
	sections := make(map[string]string)
	var current string
	var buffer []string

	commit := func() {
		if current == "" || len(buffer) == 0 {
			return
		}
		if _, exists := sections[current]; !exists {
			sections[current] = strings.TrimSpace(strings.Join(buffer, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		matched := s.matchHeader(line)
		if matched != "" {
			commit()
			current = matched
			buffer = []string{line}
			continue
		}
		if current != "" {
			buffer = append(buffer, line)
		}
	}
	commit()

	return sections
}
