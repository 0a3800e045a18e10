package api

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		size     int
		wantType string
		wantErr  string
	}{
		{"pdf", "resume.pdf", 1024, "application/pdf", ""},
		{"doc", "resume.doc", 1024, "application/msword", ""},
		{"docx", "resume.docx", 1024, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ""},
		{"txt", "notes.txt", 10, "text/plain", ""},
		{"uppercase extension", "RESUME.PDF", 10, "application/pdf", ""},
		{"rejected type", "resume.exe", 10, "", "must be a PDF, DOC, DOCX, or TXT"},
		{"over size cap", "huge.pdf", MaxUploadBytes + 1, "", "upload limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.size)
			contentType, err := ValidateUpload(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if contentType != tt.wantType {
				t.Errorf("content type = %q, want %q", contentType, tt.wantType)
			}
		})
	}
}

func TestValidateUploadMissingFile(t *testing.T) {
	if _, err := ValidateUpload(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
