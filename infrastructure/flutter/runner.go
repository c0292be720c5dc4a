package flutter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner defines the interface for running external commands in a
// working directory. This allows mocking exec.Command in tests.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command in dir and returns any error, with captured
// stderr attached for diagnostics.
func (r *ExecCommandRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return fmt.Errorf("%w: %s", err, detail)
		}
		return err
	}
	return nil
}

// Cleaner invokes the Flutter tool's clean subcommand in project directories
type Cleaner struct {
	command string
	args    []string
	runner  CommandRunner
}

// CleanerOption is a functional option for configuring Cleaner
type CleanerOption func(*Cleaner)

// WithCommand overrides the clean command and its arguments
func WithCommand(name string, args ...string) CleanerOption {
	return func(c *Cleaner) {
		if name != "" {
			c.command = name
			c.args = args
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) CleanerOption {
	return func(c *Cleaner) {
		c.runner = runner
	}
}

// NewCleaner creates a cleaner that runs "flutter clean" by default
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		command: "flutter",
		args:    []string{"clean"},
		runner:  &ExecCommandRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean runs the clean command with projectDir as the working directory.
// The command's exit status decides success; a non-zero status or a failed
// spawn both surface as an error.
func (c *Cleaner) Clean(ctx context.Context, projectDir string) error {
	return c.runner.Run(ctx, projectDir, c.command, c.args...)
}
