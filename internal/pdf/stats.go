package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Stats reports file-level details about SDS PDFs.
type Stats struct {
	maxFileSize int64
	validator   *Validator
}

// NewStats creates a stats analyzer with the specified file size constraint.
func NewStats(maxFileSize int64) *Stats {
	return &Stats{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// GetFileStats returns size, page count, and document metadata for one file.
func (s *Stats) GetFileStats(req StatsFileRequest) (*StatsFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(req.Path, fileInfo); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	result := &StatsFileResult{
		Path:         req.Path,
		Size:         fileInfo.Size(),
		Pages:        r.NumPage(),
		ModifiedDate: fileInfo.ModTime().Format("2006-01-02 15:04:05"),
	}

	s.extractMetadata(r, result)

	return result, nil
}

// extractMetadata fills in document info from the PDF trailer. The
// ledongthuc/pdf Value API can panic on malformed dictionaries, so extraction
// failures leave the basic stats intact.
func (s *Stats) extractMetadata(r *pdf.Reader, result *StatsFileResult) {
	defer func() {
		if recover() != nil {
			// Metadata extraction failed; basic stats still stand.
		}
	}()

	trailer := r.Trailer()
	if trailer.IsNull() {
		return
	}

	info := trailer.Key("Info")
	if info.IsNull() {
		return
	}

	read := func(key string) string {
		value := info.Key(key)
		if value.IsNull() {
			return ""
		}
		return strings.TrimSpace(value.String())
	}

	result.Title = read("Title")
	result.Author = read("Author")
	result.Subject = read("Subject")
	result.Producer = read("Producer")
	result.CreatedDate = read("CreationDate")
}
