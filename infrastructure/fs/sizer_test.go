package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, make([]byte, n), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDirSize(t *testing.T) {
	t.Run("sums files across nested directories", func(t *testing.T) {
		dir := t.TempDir()
		writeBytes(t, filepath.Join(dir, "a.bin"), 100)
		writeBytes(t, filepath.Join(dir, "sub", "b.bin"), 24)
		writeBytes(t, filepath.Join(dir, "sub", "deep", "c.bin"), 1)

		if got := DirSize(dir); got != 125 {
			t.Errorf("expected 125 bytes, got %d", got)
		}
	})

	t.Run("missing directory is zero", func(t *testing.T) {
		if got := DirSize(filepath.Join(t.TempDir(), "absent")); got != 0 {
			t.Errorf("expected 0 bytes, got %d", got)
		}
	})

	t.Run("empty directory is zero", func(t *testing.T) {
		if got := DirSize(t.TempDir()); got != 0 {
			t.Errorf("expected 0 bytes, got %d", got)
		}
	})

	t.Run("symlinked files are not counted", func(t *testing.T) {
		dir := t.TempDir()
		writeBytes(t, filepath.Join(dir, "real.bin"), 10)
		if err := os.Symlink(filepath.Join(dir, "real.bin"), filepath.Join(dir, "link.bin")); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		if got := DirSize(dir); got != 10 {
			t.Errorf("expected 10 bytes, got %d", got)
		}
	})
}
