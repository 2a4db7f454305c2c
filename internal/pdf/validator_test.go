package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileEmptyPath(t *testing.T) {
	v := NewValidator(1024 * 1024)

	result, err := v.ValidateFile(ValidateFileRequest{Path: ""})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("Expected empty path to be invalid")
	}
	if result.Message == "" {
		t.Error("Expected a validation message")
	}
}

func TestValidateFileNonexistent(t *testing.T) {
	v := NewValidator(1024 * 1024)

	result, err := v.ValidateFile(ValidateFileRequest{Path: "/nonexistent/sheet.pdf"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("Expected nonexistent file to be invalid")
	}
}

func TestValidateFileNotAPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	v := NewValidator(1024 * 1024)
	result, err := v.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("Expected non-PDF file to be invalid")
	}
}

func TestValidateFileGarbagePDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(path, []byte("not actually a pdf"), 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	v := NewValidator(1024 * 1024)
	result, err := v.ValidateFile(ValidateFileRequest{Path: path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Valid {
		t.Error("Expected garbage content to be invalid")
	}
}

func TestValidateFileInfo(t *testing.T) {
	dir := t.TempDir()
	v := NewValidator(10)

	tests := []struct {
		name     string
		fileName string
		content  []byte
		wantErr  bool
	}{
		{"valid small pdf name", "ok.pdf", []byte("%PDF"), false},
		{"wrong extension", "ok.txt", []byte("%PDF"), true},
		{"empty file", "empty.pdf", nil, true},
		{"too large", "big.pdf", []byte("0123456789abcdef"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.fileName)
			if err := os.WriteFile(path, tt.content, 0o600); err != nil {
				t.Fatalf("Failed to write test file: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Failed to stat test file: %v", err)
			}

			err = v.ValidateFileInfo(path, info)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileInfo() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFileInfoDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "folder.pdf")
	if err := os.Mkdir(sub, 0o750); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	info, err := os.Stat(sub)
	if err != nil {
		t.Fatalf("Failed to stat directory: %v", err)
	}

	v := NewValidator(1024)
	if err := v.ValidateFileInfo(sub, info); err == nil {
		t.Error("Expected directory to be rejected")
	}
}
