// Package batch processes every SDS PDF under a directory into one result
// set. Failures are per-document: a file that cannot be read is logged and
// skipped, never aborting the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"log"

	"github.com/chemloop/sds-extract/internal/pdf"
	"github.com/chemloop/sds-extract/internal/sds"
)

// Extractor is the per-file operation the runner drives. *pdf.Service
// satisfies it.
type Extractor interface {
	ExtractFile(path string) (*sds.Record, error)
}

// Lister enumerates the PDFs to process. *pdf.Search and *pdf.Service-backed
// helpers satisfy it.
type Lister interface {
	FindPDFsInDirectory(directory string) ([]pdf.FileInfo, error)
}

// Result summarizes one batch run.
type Result struct {
	Records   []*sds.Record
	Processed int
	Skipped   []string
}

// Runner extracts every SDS PDF found under a directory.
type Runner struct {
	extractor Extractor
	lister    Lister
	logger    *log.Logger
}

// NewRunner creates a batch runner. A nil logger uses the default logger.
func NewRunner(extractor Extractor, lister Lister, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		extractor: extractor,
		lister:    lister,
		logger:    logger,
	}
}

// Run processes every PDF under directory. Per-file extraction failures are
// logged and collected in Result.Skipped; only enumeration failures and
// context cancellation abort the run.
func (r *Runner) Run(ctx context.Context, directory string) (*Result, error) {
	files, err := r.lister.FindPDFsInDirectory(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list SDS files: %w", err)
	}

	result := &Result{}
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := r.extractor.ExtractFile(file.Path)
		if err != nil {
			r.logger.Printf("skipping %s: %v", file.Path, err)
			result.Skipped = append(result.Skipped, file.Path)
			continue
		}

		result.Records = append(result.Records, record)
		result.Processed++
	}

	return result, nil
}
