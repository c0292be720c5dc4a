package fs

import (
	"os"
	"path/filepath"
)

// DirSize returns the total size in bytes of every regular file under dir,
// recursively, without following symbolic links. A missing directory counts
// as zero and unreadable entries are skipped: the result is a best-effort
// snapshot, never an error.
func DirSize(dir string) int64 {
	var total int64
	stack := []string{dir}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				stack = append(stack, filepath.Join(d, e.Name()))
				continue
			}
			if !e.Type().IsRegular() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			total += info.Size()
		}
	}
	return total
}
