package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chemloop/sds-extract/internal/sds"
)

// Reader opens SDS PDFs and materializes the page views the extraction
// pipeline consumes.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the specified file size constraint.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// Document holds one SDS PDF's pages, fully read into memory. It implements
// sds.DocumentReader; Pages can be called any number of times since the
// underlying file was read exactly once.
type Document struct {
	path  string
	pages []sds.Page
}

// Path returns the file path the document was read from.
func (d *Document) Path() string { return d.path }

// Pages returns the document's pages in reading order.
func (d *Document) Pages() ([]sds.Page, error) { return d.pages, nil }

// OpenDocument reads every page of the PDF in one pass, capturing both the
// plain text and the table grids derived from the page's positioned text.
func (r *Reader) OpenDocument(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validatePDFFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	doc := &Document{path: path}
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text := r.extractPageText(page, &totalLength)
		tables := tablesFromContent(page.Content())

		doc.pages = append(doc.pages, sds.Page{Text: text, Tables: tables})
	}

	return doc, nil
}

// extractPageText pulls a page's plain text, enforcing the total text limit.
// A page whose text cannot be decoded yields an empty string rather than an
// error; extraction continues with the remaining pages.
func (r *Reader) extractPageText(page pdf.Page, totalLength *int) string {
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}

	if *totalLength+len(content) > r.maxTextSize {
		remaining := r.maxTextSize - *totalLength
		if remaining <= 0 {
			return ""
		}
		content = content[:remaining]
	}

	*totalLength += len(content)
	return content
}

// validatePDFFile performs basic validation on a PDF file.
func (r *Reader) validatePDFFile(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}
