package sds

import (
	"fmt"
	"strings"
)

// Field keyword variants, in priority order. The odd spellings are deliberate:
// they match misspelled labels that actually occur in supplier documents.
var (
	productNameVariants = []string{
		"Product name",
		"Chemical name",
		"Trade name",
		"Identification of the substance",
		"Identification",
	}
	productNumberVariants = []string{
		"Product code",
		"Product number",
		"Article number",
		"cataloge number",
	}
	manufacturerVariants = []string{
		"Company name of supplier",
		"Manufacturer",
		"Company name",
		"Company Identification",
		"Supplier",
		"Manufacturer/Supplier",
		"Company",
	}
	usageVariants = []string{
		"Recommended use",
		"Intended use",
		"Use",
		"Identified uses",
		"Aplication of the substance",
	}
	revisionDateVariants         = []string{"Revision Date", "Date of revision", "Revision"}
	revisionDateFallbackVariants = []string{"Revision Date", "Date of revision"}
)

// Revision dates often live in a running header or footer; when the sections
// don't yield one, only this many leading characters of the document are
// searched.
const revisionDateHeadLimit = 300

// Extractor runs the full per-document pipeline: segmentation, field
// extraction, and CAS extraction. It is safe for concurrent use across
// documents since the keyword configuration is read-only.
type Extractor struct {
	keywords  SectionKeywords
	segmenter *Segmenter
}

// NewExtractor creates an extractor for the given keyword configuration.
// Passing nil selects the default keyword set.
func NewExtractor(keywords SectionKeywords) *Extractor {
	if keywords == nil {
		keywords = DefaultSectionKeywords()
	}
	return &Extractor{
		keywords:  keywords,
		segmenter: NewSegmenter(keywords),
	}
}

// ExtractFile produces one Record from the document supplied by reader. The
// file name is recorded as given; every field the document does not yield
// stays empty. Only a reader failure is an error.
func (e *Extractor) ExtractFile(fileName string, reader DocumentReader) (*Record, error) {
	pages, err := reader.Pages()
	if err != nil {
		return nil, fmt.Errorf("failed to read document pages: %w", err)
	}

	var builder strings.Builder
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		builder.WriteString("\n")
		builder.WriteString(page.Text)
	}
	fullText := builder.String()

	sections := e.segmenter.Segment(fullText)
	sec1 := sections[SectionIdentification]
	sec3 := sections[SectionComposition]
	sec16 := sections[SectionOther]

	record := &Record{FileName: fileName}
	record.ProductName, _ = ExtractField(sec1, productNameVariants)
	record.ProductNumber, _ = ExtractField(sec1, productNumberVariants)
	record.Manufacturer, _ = ExtractField(sec1, manufacturerVariants)
	record.Usage, _ = ExtractField(sec1, usageVariants)
	record.RevisionDate = e.extractRevisionDate(sec1, sec16, fullText)
	record.CASNumbers, _ = ExtractCAS(sec3, pages)

	return record, nil
}

// extractRevisionDate applies the three-level fallback: section 1, then
// section 16, then the head of the document text.
func (e *Extractor) extractRevisionDate(sec1, sec16, fullText string) string {
	if date, ok := ExtractField(sec1, revisionDateVariants); ok {
		return date
	}
	if date, ok := ExtractField(sec16, revisionDateFallbackVariants); ok {
		return date
	}

	head := fullText
	if len(head) > revisionDateHeadLimit {
		head = head[:revisionDateHeadLimit]
	}
	date, _ := ExtractField(head, revisionDateFallbackVariants)
	return date
}
