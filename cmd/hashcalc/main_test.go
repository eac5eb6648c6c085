package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the absolute path to the project root.
func getProjectRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	// Walk up to find go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	t.Fatal("go.mod not found")
	return ""
}

// buildBinary compiles the command into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping build test in short mode")
	}

	binPath := filepath.Join(t.TempDir(), "hashcalc-test")
	buildCmd := exec.Command("go", "build", "-o", binPath, ".")
	buildCmd.Dir = filepath.Join(getProjectRoot(t), "cmd", "hashcalc")
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))
	return binPath
}

// run executes the binary with an isolated config and medium detection off.
func run(t *testing.T, bin, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(bin, append([]string{"--no-color"}, args...)...)
	cmd.Env = append(os.Environ(),
		"HASHCALC_CONFIG="+filepath.Join(t.TempDir(), "config.yaml"),
		"HASHCALC_MEDIUM=none",
		"DISPLAY=",
		"WAYLAND_DISPLAY=",
	)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(out), 0
}

func TestMainEntryPoints(t *testing.T) {
	_ = main
}

func TestMainHelpFlag(t *testing.T) {
	bin := buildBinary(t)

	out, code := run(t, bin, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "hashcalc")
	assert.Contains(t, out, "SHA512")
}

func TestBinaryHashAndVerify(t *testing.T) {
	bin := buildBinary(t)
	file := filepath.Join(t.TempDir(), "abc.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o644))

	out, code := run(t, bin, "", "-f", file, "-m", "SHA256", "-c", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "SHA256 value for abc.txt: BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD")
	assert.Contains(t, out, "abc.txt's SHA256 value verification successful")
}

func TestBinaryExitCodes(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "abc.txt")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o644))

	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
		want  string
	}{
		{"missing mode", "", []string{"-f", file}, 2, "--file and --mode"},
		{"unknown command", "", []string{"unknown-command-xyz"}, 2, "unknown"},
		{"missing file", "", []string{"-f", filepath.Join(dir, "nope"), "-m", "MD5"}, 1, "E_IO"},
		{"mismatch", "", []string{"-f", file, "-m", "MD5", "-c", "00"}, 0, "verification failed"},
		{"strict mismatch", "", []string{"-f", file, "-m", "MD5", "-c", "00", "--strict"}, 3, "verification failed"},
		{"cancelled prompt", "", []string{"--tui"}, 0, "Program exited."},
		{"no file selected", "1\n\n", []string{"--tui"}, 0, "No file selected."},
		{"stdin", "abc", []string{"-f", "-", "-m", "SHA1"}, 0, "A9993E364706816ABA3E25717850C26C9CD0D89D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := run(t, bin, tt.stdin, tt.args...)
			assert.Equal(t, tt.code, code, out)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestBinaryJSONOutput(t *testing.T) {
	bin := buildBinary(t)

	out, code := run(t, bin, "", "--json", "algorithms")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"name": "SHA256"`)
	assert.Contains(t, out, `"hex_length": 64`)
}
