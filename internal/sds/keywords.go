package sds

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SectionKeywords maps a section id (e.g. "section_1") to the ordered list of
// header keyword variants that identify it. Matching is case-insensitive.
// The map is built once per run and treated as read-only afterwards.
type SectionKeywords map[string][]string

// Well-known section ids used by the field extraction pipeline.
const (
	SectionIdentification = "section_1"
	SectionComposition    = "section_3"
	SectionFirstAid       = "section_4"
	SectionOther          = "section_16"
)

// DefaultSectionKeywords returns the keyword configuration used when no
// keywords file is supplied. The variants cover the header spellings commonly
// seen across SDS suppliers.
func DefaultSectionKeywords() SectionKeywords {
	return SectionKeywords{
		SectionIdentification: {
			"Identification",
			"Product Identification",
			"Section 1",
		},
		SectionComposition: {
			"Composition",
			"Information on Ingredients",
			"Ingredients",
			"Section 3",
			"Hazardous Ingredients",
		},
		SectionOther: {
			"Other information",
			"Section 16",
			"Additional Information",
		},
	}
}

// LoadSectionKeywords reads a section keyword configuration from a YAML file.
// The file maps section ids to lists of keyword strings:
//
//	section_1:
//	  - Identification
//	  - Section 1
func LoadSectionKeywords(path string) (SectionKeywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read keywords file: %w", err)
	}

	var keywords SectionKeywords
	if err := yaml.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("cannot parse keywords file %s: %w", path, err)
	}

	if len(keywords) == 0 {
		return nil, fmt.Errorf("keywords file %s defines no sections", path)
	}

	for id, variants := range keywords {
		if len(variants) == 0 {
			return nil, fmt.Errorf("section %q has no keyword variants", id)
		}
	}

	return keywords, nil
}

// keywordEntry pairs one lowercased keyword with the section id it selects.
type keywordEntry struct {
	keyword   string
	sectionID string
}

// lookupTable flattens the keyword map into a deterministic search order.
// Longer keywords are tried first so that the most specific variant wins when
// one keyword is a prefix of another ("section 16" vs "section 1"); ties
// break lexicographically. A keyword registered under two sections resolves
// to the lexicographically later section id.
func (k SectionKeywords) lookupTable() []keywordEntry {
	ids := make([]string, 0, len(k))
	for id := range k {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[string]int)
	var entries []keywordEntry
	for _, id := range ids {
		for _, keyword := range k[id] {
			lowered := strings.ToLower(strings.TrimSpace(keyword))
			if lowered == "" {
				continue
			}
			if idx, dup := seen[lowered]; dup {
				entries[idx].sectionID = id
				continue
			}
			seen[lowered] = len(entries)
			entries = append(entries, keywordEntry{keyword: lowered, sectionID: id})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].keyword) != len(entries[j].keyword) {
			return len(entries[i].keyword) > len(entries[j].keyword)
		}
		return entries[i].keyword < entries[j].keyword
	})

	return entries
}
