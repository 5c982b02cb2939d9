package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.txt")
	want := "The complaint was filed on March 12, 2021."
	if err := os.WriteFile(path, []byte(want), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestReadMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Case\nbody"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(got, "body") {
		t.Errorf("got %q", got)
	}
}

func TestReadInvalidUTF8Replaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte{0x41, 0xff, 0x42}, 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewReader().Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(got, "A") || !strings.Contains(got, "B") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "\xff") {
		t.Errorf("invalid byte survived: %q", got)
	}
}

func TestReadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	if err := os.WriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewReader().Read(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupported(t *testing.T) {
	for _, path := range []string{"a.txt", "B.PDF", "c.docx", "d.odt", "e.xlsx", "f.md", "g.rtf"} {
		if !IsSupported(path) {
			t.Errorf("IsSupported(%q) = false", path)
		}
	}
	for _, path := range []string{"a.png", "b.exe", "noext"} {
		if IsSupported(path) {
			t.Errorf("IsSupported(%q) = true", path)
		}
	}
}

func TestReadDOCXMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewReader().Read(path); err == nil {
		t.Error("expected error for malformed docx")
	}
}
