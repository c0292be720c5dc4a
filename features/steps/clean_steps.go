//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	appclean "fluttersweep/application/clean"
	appscan "fluttersweep/application/scan"
	"fluttersweep/domain/project"
	"fluttersweep/infrastructure/fs"
	"fluttersweep/infrastructure/pubspec"

	"github.com/cucumber/godog"
)

// recordingRunner simulates the external clean command, failing for the
// configured project directories
type recordingRunner struct {
	mu       sync.Mutex
	failures map[string]bool
	calls    []string
}

func (r *recordingRunner) Clean(ctx context.Context, projectDir string) error {
	r.mu.Lock()
	r.calls = append(r.calls, projectDir)
	r.mu.Unlock()
	if r.failures[filepath.Base(projectDir)] {
		return errors.New("exit status 1")
	}
	return nil
}

var (
	cleanRoot     string
	cleanRunner   *recordingRunner
	cleanOutput   bytes.Buffer
	foundProjects []project.Project
	cleanResult   project.CleanResult
)

const flutterManifest = "name: %s\ndependencies:\n  flutter:\n    sdk: flutter\n"
const dartManifest = "name: %s\ndependencies:\n  args: ^2.0.0\n"

func createProject(name, manifest string, buildBytes int) error {
	dir := filepath.Join(cleanRoot, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	content := fmt.Sprintf(manifest, name)
	if err := os.WriteFile(filepath.Join(dir, pubspec.ManifestName), []byte(content), 0644); err != nil {
		return err
	}
	if buildBytes > 0 {
		buildDir := filepath.Join(dir, appscan.BuildDirName)
		if err := os.MkdirAll(buildDir, 0755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(buildDir, "app.so"), make([]byte, buildBytes), 0644)
	}
	return nil
}

func aFlutterProjectWithBuildOutput(name string, buildBytes int) error {
	return createProject(name, flutterManifest, buildBytes)
}

func aDartProjectWithBuildOutput(name string, buildBytes int) error {
	return createProject(name, dartManifest, buildBytes)
}

func aFlutterProjectNeverBuilt(name string) error {
	return createProject(name, flutterManifest, 0)
}

func theCleanCommandFailsFor(name string) error {
	cleanRunner.failures[name] = true
	return nil
}

func scanWorkspace(recursive bool) error {
	scanner := appscan.NewService(
		fs.NewWalker([]string{"node_modules"}),
		pubspec.NewDetector(),
		fs.DirSize,
		appscan.WithOutput(&cleanOutput),
	)
	projects, err := scanner.Scan(cleanRoot, recursive)
	if err != nil {
		return err
	}
	foundProjects = projects
	return nil
}

func iScanTheWorkspaceRecursively() error {
	return scanWorkspace(true)
}

func iScanTheWorkspaceWithoutRecursion() error {
	return scanWorkspace(false)
}

func iCleanAllDiscoveredProjects() error {
	service := appclean.NewService(cleanRunner, appclean.WithOutput(&cleanOutput))
	cleanResult = service.CleanAll(context.Background(), foundProjects)
	return nil
}

func exactlyProjectsAreDiscovered(count int) error {
	if len(foundProjects) != count {
		return fmt.Errorf("expected %d projects, found %d: %v", count, len(foundProjects), foundProjects)
	}
	return nil
}

func projectIsReportedWithBuildSize(name string, size int) error {
	for _, p := range foundProjects {
		if filepath.Base(p.Path) == name {
			if p.BuildSize != int64(size) {
				return fmt.Errorf("expected build size %d for %s, got %d", size, name, p.BuildSize)
			}
			return nil
		}
	}
	return fmt.Errorf("project %s was not discovered", name)
}

func theResultReports(found, cleaned, freed int) error {
	if cleanResult.ProjectsFound != found {
		return fmt.Errorf("expected %d found, got %d", found, cleanResult.ProjectsFound)
	}
	if cleanResult.ProjectsCleaned != cleaned {
		return fmt.Errorf("expected %d cleaned, got %d", cleaned, cleanResult.ProjectsCleaned)
	}
	if cleanResult.SpaceFreed != int64(freed) {
		return fmt.Errorf("expected %d bytes freed, got %d", freed, cleanResult.SpaceFreed)
	}
	return nil
}

func aFailureLineNames(name string) error {
	if !strings.Contains(cleanOutput.String(), "Failed to clean") {
		return fmt.Errorf("expected a failure line, got %q", cleanOutput.String())
	}
	if !strings.Contains(cleanOutput.String(), name) {
		return fmt.Errorf("expected failure line to name %s, got %q", name, cleanOutput.String())
	}
	return nil
}

// InitializeCleanScenario registers steps for the clean workflow scenarios
func InitializeCleanScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		root, err := os.MkdirTemp("", "fluttersweep-feature-*")
		if err != nil {
			return c, err
		}
		cleanRoot = root
		cleanRunner = &recordingRunner{failures: map[string]bool{}}
		cleanOutput.Reset()
		foundProjects = nil
		cleanResult = project.CleanResult{}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		os.RemoveAll(cleanRoot)
		return c, nil
	})

	ctx.Step(`^a Flutter project "([^"]*)" with (\d+) bytes of build output$`, aFlutterProjectWithBuildOutput)
	ctx.Step(`^a Dart project "([^"]*)" with (\d+) bytes of build output$`, aDartProjectWithBuildOutput)
	ctx.Step(`^a Flutter project "([^"]*)" that was never built$`, aFlutterProjectNeverBuilt)
	ctx.Step(`^the clean command fails for "([^"]*)"$`, theCleanCommandFailsFor)
	ctx.Step(`^I scan the workspace recursively$`, iScanTheWorkspaceRecursively)
	ctx.Step(`^I scan the workspace without recursion$`, iScanTheWorkspaceWithoutRecursion)
	ctx.Step(`^I clean all discovered projects$`, iCleanAllDiscoveredProjects)
	ctx.Step(`^exactly (\d+) projects? (?:is|are) discovered$`, exactlyProjectsAreDiscovered)
	ctx.Step(`^project "([^"]*)" is reported with build size (\d+)$`, projectIsReportedWithBuildSize)
	ctx.Step(`^the result reports (\d+) found, (\d+) cleaned and (\d+) bytes freed$`, theResultReports)
	ctx.Step(`^a failure line names "([^"]*)"$`, aFailureLineNames)
}
