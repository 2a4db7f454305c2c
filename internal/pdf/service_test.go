package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestService(t *testing.T, dir string) *Service {
	t.Helper()
	svc, err := NewService(10*1024*1024, dir, nil)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc
}

func TestNewServiceEmptyDirectory(t *testing.T) {
	if _, err := NewService(1024, "", nil); err == nil {
		t.Error("Expected error for empty configured directory")
	}
}

func TestServiceExtractFileOutsideDirectory(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	outside := filepath.Join(other, "escape.pdf")
	if err := os.WriteFile(outside, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	svc := newTestService(t, dir)
	_, err := svc.ExtractFile(outside)
	if err == nil {
		t.Fatal("Expected security validation error")
	}
	if !strings.Contains(err.Error(), "security validation failed") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestServiceValidateFileInsideDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	svc := newTestService(t, dir)
	result, err := svc.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("Expected garbage file to be invalid")
	}
}

func TestServiceSearchDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestPDF(t, dir, "sheet.pdf")

	svc := newTestService(t, dir)
	result, err := svc.SearchDirectory(SearchDirectoryRequest{Directory: dir})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("Expected 1 PDF, got %d", result.TotalCount)
	}
}

func TestServiceStatsFileOutsideDirectory(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	outside := filepath.Join(other, "escape.pdf")
	if err := os.WriteFile(outside, []byte("%PDF-1.4"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	svc := newTestService(t, dir)
	if _, err := svc.StatsFile(StatsFileRequest{Path: outside}); err == nil {
		t.Error("Expected security validation error")
	}
}
