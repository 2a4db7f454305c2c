// Package report persists extraction results as tabular output.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/chemloop/sds-extract/internal/sds"
)

// WriteCSV writes a header row followed by one row per record, in the fixed
// column order downstream consumers expect.
func WriteCSV(w io.Writer, records []*sds.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(sds.RecordColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", record.FileName, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

// WriteCSVFile writes the records to a file, creating or truncating it.
func WriteCSVFile(path string, records []*sds.Record) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
