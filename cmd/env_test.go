// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> resolution -> template read -> substitution ->
// delivery. The core pipeline in internal/command has its own unit tests;
// these tests prove the wiring between the CLI surface and that core.
//
// Each test environment gets its own working directory (the Project tier)
// and its own fake HOME (the Global tier), so tests never touch the real
// user's templates or usage log.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the promptcraft binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "promptcraft-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "promptcraft"
		if os.PathSeparator == '\\' {
			binaryName = "promptcraft.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state: an isolated project directory and
// an isolated home directory.
type testEnv struct {
	t      *testing.T
	dir    string // working directory: project tier lives here
	home   string // fake HOME: global tier and usage log live here
	binary string
}

// newTestEnv creates empty project and home directories. Templates are
// seeded explicitly per test via writeProject/writeGlobal.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// writeProject creates a template in the project tier.
func (e *testEnv) writeProject(name, content string) {
	e.t.Helper()
	e.writeTemplate(filepath.Join(e.dir, ".promptcraft", "commands"), name, content)
}

// writeGlobal creates a template in the global tier.
func (e *testEnv) writeGlobal(name, content string) {
	e.t.Helper()
	e.writeTemplate(filepath.Join(e.home, ".promptcraft", "commands"), name, content)
}

func (e *testEnv) writeTemplate(dir, name, content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(dir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644))
}

// run executes promptcraft with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("promptcraft %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes promptcraft and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
