package sds

import (
	"regexp"
	"strings"
)

// ExtractField locates a labeled field value inside a section's text.
//
// Two layouts are supported for every keyword variant:
//
//	Product name: Acetone        (label and value on one line)
//	Product name                 (label line, value on the next non-blank line)
//	Acetone
//
// The scan is line-major, keyword-minor: each line is tested against every
// variant before moving on, so a later variant on an earlier line wins over
// an earlier variant on a later line. Returns ("", false) when no line
// matches any variant.
func ExtractField(sectionText string, keywordVariants []string) (string, bool) {
	if sectionText == "" || len(keywordVariants) == 0 {
		return "", false
	}

	type variantPatterns struct {
		inline    *regexp.Regexp
		labelOnly *regexp.Regexp
	}

	patterns := make([]variantPatterns, 0, len(keywordVariants))
	for _, keyword := range keywordVariants {
		quoted := regexp.QuoteMeta(keyword)
		patterns = append(patterns, variantPatterns{
			inline:    regexp.MustCompile(`(?i)` + quoted + `\s*[:\-]\s*(.+)`),
			labelOnly: regexp.MustCompile(`(?i)^` + quoted + `\s*[:\-]?$`),
		})
	}

	lines := strings.Split(sectionText, "\n")
	for i, line := range lines {
		clean := strings.TrimSpace(line)
		for _, p := range patterns {
			if m := p.inline.FindStringSubmatch(clean); m != nil {
				return strings.TrimSpace(m[1]), true
			}
			if p.labelOnly.MatchString(clean) {
				for j := i + 1; j < len(lines); j++ {
					next := strings.TrimSpace(lines[j])
					if next != "" {
						return next, true
					}
				}
			}
		}
	}

	return "", false
}
