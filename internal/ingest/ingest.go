// Package ingest reads case documents from disk and extracts their plain
// text. Cases arrive as text, PDF, Word, OpenDocument, or spreadsheet files.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/lu4p/cat"
)

// Supported lists the file extensions the Reader understands.
var Supported = []string{".txt", ".md", ".pdf", ".docx", ".odt", ".rtf", ".xlsx"}

// Reader extracts plain text from case document files.
type Reader struct{}

// NewReader returns a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the text content of the file at path. The format is chosen by
// extension; unsupported extensions are an error.
func (r *Reader) Read(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return validUTF8(content), nil
	case ".pdf":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return readPDF(content)
	case ".docx":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return readDOCX(content)
	case ".odt", ".rtf":
		text, err := cat.File(path)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", ext, err)
		}
		return text, nil
	case ".xlsx":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return readExcel(content)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// IsSupported reports whether path has a supported extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range Supported {
		if ext == s {
			return true
		}
	}
	return false
}

// validUTF8 returns content as a string with invalid sequences replaced.
func validUTF8(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), "�")
}
