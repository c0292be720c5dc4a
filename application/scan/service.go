package scan

import (
	"fmt"
	"io"
	"path/filepath"

	"fluttersweep/domain/project"
)

// BuildDirName is the conventional Flutter build artifact directory.
const BuildDirName = "build"

// Walker produces candidate directories under a root
type Walker interface {
	Walk(root string, recursive bool) ([]string, error)
	Warnings() []string
}

// Detector decides whether a directory is a Flutter project root
type Detector interface {
	IsFlutterProject(dir string) bool
}

// Sizer measures the on-disk size of a directory tree
type Sizer func(dir string) int64

// Progress is notified when a scan starts and finishes. The CLI hooks a
// terminal spinner in here; nil disables progress reporting.
type Progress interface {
	Start()
	Stop()
}

// Service discovers Flutter projects with reclaimable build output
type Service struct {
	walker   Walker
	detector Detector
	sizer    Sizer
	verbose  bool
	progress Progress
	output   io.Writer
}

// Option is a functional option for configuring Service
type Option func(*Service)

// WithVerbose enables per-directory progress lines
func WithVerbose(verbose bool) Option {
	return func(s *Service) {
		s.verbose = verbose
	}
}

// WithProgress attaches a progress indicator for the scan phase
func WithProgress(p Progress) Option {
	return func(s *Service) {
		s.progress = p
	}
}

// WithOutput sets the writer for progress and warning lines
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
	}
}

// NewService creates a new scan service
func NewService(walker Walker, detector Detector, sizer Sizer, opts ...Option) *Service {
	s := &Service{
		walker:   walker,
		detector: detector,
		sizer:    sizer,
		output:   io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root and returns every Flutter project whose build directory
// holds at least one byte, in walk order. Verbose output is a side channel
// only; the returned list is the same either way.
func (s *Service) Scan(root string, recursive bool) ([]project.Project, error) {
	if s.progress != nil {
		s.progress.Start()
		defer s.progress.Stop()
	}

	dirs, err := s.walker.Walk(root, recursive)
	if err != nil {
		return nil, err
	}

	var projects []project.Project
	for _, dir := range dirs {
		if s.verbose {
			fmt.Fprintf(s.output, "Scanning %s\n", dir)
		}
		if !s.detector.IsFlutterProject(dir) {
			continue
		}
		size := s.sizer(filepath.Join(dir, BuildDirName))
		if size == 0 {
			if s.verbose {
				fmt.Fprintf(s.output, "Skipping %s: no build output\n", dir)
			}
			continue
		}
		if s.verbose {
			fmt.Fprintf(s.output, "Found %s (%s)\n", dir, project.FormatSize(size))
		}
		projects = append(projects, project.Project{Path: dir, BuildSize: size})
	}

	if s.verbose {
		for _, warning := range s.walker.Warnings() {
			fmt.Fprintf(s.output, "Warning: %s\n", warning)
		}
	}
	return projects, nil
}
