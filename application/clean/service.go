package clean

import (
	"context"
	"fmt"
	"io"
	"sync"

	"fluttersweep/domain/project"
)

// Runner invokes the external clean command for one project directory
type Runner interface {
	Clean(ctx context.Context, projectDir string) error
}

// Service runs the clean command across projects concurrently and
// aggregates the outcome
type Service struct {
	runner  Runner
	verbose bool
	output  io.Writer

	mu sync.Mutex // serializes output lines from concurrent tasks
}

// Option is a functional option for configuring Service
type Option func(*Service)

// WithVerbose adds captured error detail to failure lines
func WithVerbose(verbose bool) Option {
	return func(s *Service) {
		s.verbose = verbose
	}
}

// WithOutput sets the writer for per-project report lines
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.output = w
	}
}

// NewService creates a new clean service
func NewService(runner Runner, opts ...Option) *Service {
	s := &Service{
		runner: runner,
		output: io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type outcome struct {
	proj project.Project
	err  error
}

// CleanAll launches one cleaning task per project, waits for every task to
// finish, and folds the outcomes into a CleanResult. There is no
// concurrency cap: each task spends its time inside an independent child
// process. A failed project is reported and skipped; it never aborts the
// others. The returned counters are exact regardless of completion order
// because aggregation happens in a single fold after the fan-out.
func (s *Service) CleanAll(ctx context.Context, projects []project.Project) project.CleanResult {
	result := project.CleanResult{ProjectsFound: len(projects)}

	outcomes := make(chan outcome, len(projects))
	var wg sync.WaitGroup
	for _, p := range projects {
		wg.Add(1)
		go func(p project.Project) {
			defer wg.Done()
			err := s.runner.Clean(ctx, p.Path)
			if err == nil {
				s.printf("Cleaned %s (freed %s)\n", p.Path, project.FormatSize(p.BuildSize))
			} else {
				s.printf("Failed to clean %s\n", p.Path)
				if s.verbose {
					s.printf("  %v\n", err)
				}
			}
			outcomes <- outcome{proj: p, err: err}
		}(p)
	}
	wg.Wait()
	close(outcomes)

	for o := range outcomes {
		if o.err != nil {
			continue
		}
		result.ProjectsCleaned++
		result.SpaceFreed += o.proj.BuildSize
	}
	return result
}

func (s *Service) printf(format string, a ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.output, format, a...)
}
