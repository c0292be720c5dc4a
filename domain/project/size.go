package project

import "github.com/dustin/go-humanize"

// FormatSize renders a byte count for reports, e.g. "1.2 MB".
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
