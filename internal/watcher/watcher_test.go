package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestSyncExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.pdf", "ignored.bin"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var mu sync.Mutex
	var got []string
	w := New([]string{dir}, func(path string) {
		mu.Lock()
		got = append(got, filepath.Base(path))
		mu.Unlock()
	}, zap.NewNop())

	w.SyncExistingFiles()

	mu.Lock()
	defer mu.Unlock()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "a.txt" || got[1] != "b.pdf" {
		t.Errorf("synced files: got %v", got)
	}
}

func TestStartCreatesMissingDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drop")
	w := New([]string{dir}, func(string) {}, zap.NewNop())
	ctx := t.Context()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("drop folder not created: %v", err)
	}
}

func TestStopIdempotent(t *testing.T) {
	w := New([]string{t.TempDir()}, func(string) {}, zap.NewNop())
	if err := w.Start(t.Context()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()
	w.Stop()
}
