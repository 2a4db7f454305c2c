package sds

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// CAS registry numbers: 2-7 digits, 2 digits, check digit.
	casPattern = regexp.MustCompile(`\b\d{2,7}-\d{2}-\d\b`)

	// Concentration expressions in table rows: optional comparator, a number
	// or a range, optional percent sign.
	tableConcPattern = regexp.MustCompile(
		`(?:[<>]=?|~)?\s*\d+(?:\.\d+)?(?:\s*-\s*(?:[<>]=?|~)?\s*\d+(?:\.\d+)?\s*)?%?`)

	// Simpler concentration shapes accepted when scanning narrative text.
	textConcPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*%|\d+\s*-\s*\d+\s*%`)
)

const cellSeparator = " | "

// ExtractCAS collects CAS numbers, each paired with a concentration where one
// can be found, from a composition section.
//
// Tables are preferred: concentrations line up with CAS numbers far more
// reliably in the composition table than in narrative text. Every table on
// every page whose text contains the section verbatim is scanned row by row,
// and the i-th CAS match in a row is paired with the i-th concentration match
// left over once the CAS substrings are removed. The pairing is positional
// and only correct when the row layout is consistent; that is an accepted
// limitation. Only when no matching page carries a table does the scan fall
// back to the section text itself.
//
// The combined result is deduplicated, sorted, and joined with ", ".
// Returns ("", false) when nothing was found.
func ExtractCAS(sectionText string, pages []Page) (string, bool) {
	entries := make(map[string]struct{})
	foundTable := false

	for _, page := range pages {
		if page.Text == "" || !strings.Contains(page.Text, sectionText) {
			continue
		}
		if len(page.Tables) == 0 {
			continue
		}
		foundTable = true
		for _, table := range page.Tables {
			for _, row := range table.Rows {
				collectRowEntries(row, entries)
			}
		}
	}

	if !foundTable {
		casMatches := casPattern.FindAllString(sectionText, -1)
		concMatches := textConcPattern.FindAllString(sectionText, -1)
		for i, cas := range casMatches {
			addEntry(entries, cas, concAt(concMatches, i))
		}
	}

	if len(entries) == 0 {
		return "", false
	}

	combined := make([]string, 0, len(entries))
	for entry := range entries {
		combined = append(combined, entry)
	}
	sort.Strings(combined)

	return strings.Join(combined, ", "), true
}

// collectRowEntries extracts CAS/concentration pairings from one table row.
func collectRowEntries(row Row, entries map[string]struct{}) {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		if cell != nil && *cell != "" {
			cells = append(cells, *cell)
		}
	}
	rowText := strings.Join(cells, cellSeparator)

	casMatches := casPattern.FindAllString(rowText, -1)
	if len(casMatches) == 0 {
		return
	}

	remainder := casPattern.ReplaceAllString(rowText, "")
	concMatches := tableConcPattern.FindAllString(remainder, -1)

	for i, cas := range casMatches {
		addEntry(entries, cas, concAt(concMatches, i))
	}
}

func concAt(concMatches []string, i int) string {
	if i >= len(concMatches) {
		return ""
	}
	return strings.TrimSpace(concMatches[i])
}

func addEntry(entries map[string]struct{}, cas, concentration string) {
	if concentration != "" {
		entries[fmt.Sprintf("%s (%s)", cas, concentration)] = struct{}{}
		return
	}
	entries[cas] = struct{}{}
}
