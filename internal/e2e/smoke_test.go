package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runAshell(t, binaryPath, home, "config", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "wrote default settings")

	_, stderr, err = runAshell(t, binaryPath, home, "config", "project", "add", "alpha", filepath.Join(home, "alpha"))
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runAshell(t, binaryPath, home, "config", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "[project.alpha]")
	assert.Contains(t, stdout, "width = 1080")

	state, err := os.ReadFile(filepath.Join(home, ".ashell", "state.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "version = 1")

	stdout, stderr, err = runAshell(t, binaryPath, home, "window", "kinds")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "projectId")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ashell-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ashell")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ashell binary: %s", string(output))
	return binaryPath
}

func runAshell(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
