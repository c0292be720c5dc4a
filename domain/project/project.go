package project

// Project represents a Flutter project discovered during a scan.
// BuildSize is a snapshot of the project's build directory taken at scan
// time, not a live value.
type Project struct {
	Path      string
	BuildSize int64
}

// TotalSize returns the combined build size of all projects.
func TotalSize(projects []Project) int64 {
	var total int64
	for _, p := range projects {
		total += p.BuildSize
	}
	return total
}
