package pdf

import (
	"fmt"
	"path/filepath"

	"github.com/chemloop/sds-extract/internal/pdf/security"
	"github.com/chemloop/sds-extract/internal/sds"
)

// Service orchestrates the PDF components and the extraction pipeline behind
// one façade. Every path entering through a request is checked against the
// configured directory first.
type Service struct {
	maxFileSize   int64
	reader        *Reader
	validator     *Validator
	stats         *Stats
	search        *Search
	extractor     *sds.Extractor
	pathValidator *security.PathValidator
}

// NewService creates a service rooted at the configured directory. A nil
// keyword map selects the default SDS section keywords.
func NewService(maxFileSize int64, configuredDirectory string, keywords sds.SectionKeywords) (*Service, error) {
	pathValidator, err := security.NewPathValidator(configuredDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		reader:        NewReader(maxFileSize),
		validator:     NewValidator(maxFileSize),
		stats:         NewStats(maxFileSize),
		search:        NewSearch(maxFileSize),
		extractor:     sds.NewExtractor(keywords),
		pathValidator: pathValidator,
	}, nil
}

// ExtractFile runs the full SDS extraction pipeline on one file and returns
// its record.
func (s *Service) ExtractFile(path string) (*sds.Record, error) {
	if err := s.pathValidator.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	doc, err := s.reader.OpenDocument(path)
	if err != nil {
		return nil, err
	}

	return s.extractor.ExtractFile(filepath.Base(path), doc)
}

// ValidateFile performs validation on a PDF file.
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// StatsFile returns file-level details about a PDF file.
func (s *Service) StatsFile(req StatsFileRequest) (*StatsFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.stats.GetFileStats(req)
}

// FindPDFsInDirectory lists every SDS PDF under a directory without name
// filtering. Together with ExtractFile this lets the service drive a batch
// run directly.
func (s *Service) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	if err := s.pathValidator.ValidatePath(directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.search.FindPDFsInDirectory(directory)
}

// SearchDirectory lists the SDS PDFs under a directory.
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory != "" {
		if err := s.pathValidator.ValidatePath(req.Directory); err != nil {
			return nil, fmt.Errorf("security validation failed: %w", err)
		}
	}
	return s.search.SearchDirectory(req)
}
