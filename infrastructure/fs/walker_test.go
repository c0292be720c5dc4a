package fs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
}

func TestWalk(t *testing.T) {
	t.Run("yields root first then subdirectories depth-first", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "apps/one", "apps/two", "zz")

		walker := NewWalker(nil)
		dirs, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			root,
			filepath.Join(root, "apps"),
			filepath.Join(root, "apps", "one"),
			filepath.Join(root, "apps", "two"),
			filepath.Join(root, "zz"),
		}
		if !reflect.DeepEqual(dirs, want) {
			t.Errorf("expected %v, got %v", want, dirs)
		}
	})

	t.Run("skips hidden and excluded directories", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, ".git/objects", "node_modules/pkg", "src")

		walker := NewWalker([]string{"node_modules"})
		dirs, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{root, filepath.Join(root, "src")}
		if !reflect.DeepEqual(dirs, want) {
			t.Errorf("expected %v, got %v", want, dirs)
		}
	})

	t.Run("exclusion is case-insensitive", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "Node_Modules/pkg")

		walker := NewWalker([]string{"node_modules"})
		dirs, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dirs) != 1 || dirs[0] != root {
			t.Errorf("expected only root, got %v", dirs)
		}
	})

	t.Run("non-recursive yields exactly the root", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "child/grandchild")

		walker := NewWalker(nil)
		dirs, err := walker.Walk(root, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dirs) != 1 || dirs[0] != root {
			t.Errorf("expected only root, got %v", dirs)
		}
	})

	t.Run("missing root is an error", func(t *testing.T) {
		walker := NewWalker(nil)
		_, err := walker.Walk(filepath.Join(t.TempDir(), "nope"), true)
		if !errors.Is(err, ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound, got %v", err)
		}
	})

	t.Run("file as root is an error", func(t *testing.T) {
		root := t.TempDir()
		file := filepath.Join(root, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		walker := NewWalker(nil)
		if _, err := walker.Walk(file, true); !errors.Is(err, ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound, got %v", err)
		}
	})

	t.Run("does not follow directory symlinks", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "real/inner")
		if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		walker := NewWalker(nil)
		dirs, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, d := range dirs {
			if d == filepath.Join(root, "link") {
				t.Errorf("walk followed symlink %s", d)
			}
		}
	})

	t.Run("repeat walks over an unchanged tree are identical", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "a/b", "c")

		walker := NewWalker(nil)
		first, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := walker.Walk(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical walks, got %v then %v", first, second)
		}
	})

	t.Run("warnings reset between walks", func(t *testing.T) {
		root := t.TempDir()
		walker := NewWalker(nil)
		if _, err := walker.Walk(root, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if warnings := walker.Warnings(); len(warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings)
		}
	})
}
