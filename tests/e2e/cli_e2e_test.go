package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"pinfile/tests/testutil"
)

var (
	buildOnce sync.Once
	buildBin  string
	buildErr  error
)

// buildPinfile compiles the pinfile binary once per test run. Running the
// built binary directly (rather than via "go run") preserves the program's
// exit code, which "go run" replaces with 1.
func buildPinfile(t *testing.T, root string) string {
	t.Helper()
	buildOnce.Do(func() {
		buildBin = filepath.Join(os.TempDir(), "pinfile-e2e-test")
		cmd := exec.Command("go", "build", "-o", buildBin, ".")
		cmd.Dir = root
		cmd.Env = append(os.Environ(), "GO111MODULE=on")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("go build output: %s", out)
		}
	})
	require.NoError(t, buildErr)
	return buildBin
}

func runPinfile(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(buildPinfile(t, root), args...)
	cmd.Dir = root
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestValidateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	out, err := runPinfile(t, root, "validate",
		"--manifest", filepath.Join("fixtures", "requirements-sample.txt"),
	)
	require.NoError(t, err, out)
	require.Contains(t, out, "validated: 18 pins")
}

func TestValidateCommandE2EConflict(t *testing.T) {
	root := testutil.RepoRoot(t)
	manifestPath := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(manifestPath, []byte("click==8.1.8\nclick==8.2.0\n"), 0644))

	out, err := runPinfile(t, root, "validate", "--manifest", manifestPath)
	require.Error(t, err)
	require.Contains(t, out, "conflicting-pin")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 3, exitErr.ExitCode())
}

func TestAuditCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	out, err := runPinfile(t, root, "audit",
		"--manifest", filepath.Join("fixtures", "requirements-sample.txt"),
		"--index", filepath.Join("fixtures", "index-sample.yaml"),
	)
	require.NoError(t, err, out)
	require.Contains(t, out, "resolvable")
}

func TestFmtCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	manifestPath := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(manifestPath, []byte("b==2.0\na==1.0\n"), 0644))

	out, err := runPinfile(t, root, "fmt", "--manifest", manifestPath, "--write")
	require.NoError(t, err, out)

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "a==1.0\nb==2.0\n", string(data))

	out, err = runPinfile(t, root, "fmt", "--manifest", manifestPath, "--write")
	require.NoError(t, err, out)
	require.Contains(t, out, "already canonical")
}
