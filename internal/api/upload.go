package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxUploadBytes is the client-side cap checked before any upload is
// attempted.
const MaxUploadBytes = 5_000_000

// allowedUploadTypes maps accepted resume/cover-letter extensions to their
// MIME types.
var allowedUploadTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// ValidateUpload checks size and type of a local file and returns its MIME
// type. Validation failures never reach the network.
func ValidateUpload(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxUploadBytes {
		return "", fmt.Errorf("%s is %s, exceeding the %s upload limit",
			filepath.Base(path), humanize.Bytes(uint64(info.Size())), humanize.Bytes(MaxUploadBytes))
	}

	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := allowedUploadTypes[ext]
	if !ok {
		return "", fmt.Errorf("%s must be a PDF, DOC, DOCX, or TXT file", filepath.Base(path))
	}
	return contentType, nil
}
