package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetFileStatsEmptyPath(t *testing.T) {
	s := NewStats(1024 * 1024)
	if _, err := s.GetFileStats(StatsFileRequest{}); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestGetFileStatsNonexistentFile(t *testing.T) {
	s := NewStats(1024 * 1024)
	if _, err := s.GetFileStats(StatsFileRequest{Path: "/no/such/file.pdf"}); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGetFileStatsNonPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	s := NewStats(1024 * 1024)
	_, err := s.GetFileStats(StatsFileRequest{Path: path})
	if err == nil {
		t.Fatal("Expected error for non-PDF file")
	}
	if !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("Expected extension error, got: %v", err)
	}
}

func TestGetFileStatsTooLarge(t *testing.T) {
	dir := t.TempDir()
	writeTestPDF(t, dir, "big.pdf")

	s := NewStats(4)
	if _, err := s.GetFileStats(StatsFileRequest{Path: filepath.Join(dir, "big.pdf")}); err == nil {
		t.Error("Expected error for file over the size limit")
	}
}

func TestGetFileStatsMalformedPDF(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPDF(t, dir, "broken.pdf")

	// Header only, no xref; open should fail rather than return stats
	s := NewStats(1024 * 1024)
	if _, err := s.GetFileStats(StatsFileRequest{Path: path}); err == nil {
		t.Error("Expected error for malformed PDF")
	}
}
