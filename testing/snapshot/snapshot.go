// Package snapshot provides golden file testing for command output.
// Goldens live under testdata/golden and are rewritten with UPDATE_GOLDEN=1.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// GoldenDir is the default directory for golden files
const GoldenDir = "testdata/golden"

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap compares output against golden files for one test
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv("UPDATE_GOLDEN") == "1",
	}
}

// WithDir sets a custom golden file directory
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares actual against <dir>/<name>.golden after normalizing both.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	path := filepath.Join(s.goldenDir, name+".golden")
	got := Normalize(actual)

	if s.update {
		require.NoError(s.t, os.MkdirAll(s.goldenDir, 0755))
		require.NoError(s.t, os.WriteFile(path, []byte(got), 0644))
		s.t.Logf("Updated golden file: %s", path)
		return
	}

	want, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.t.Fatalf("Golden file not found: %s\nRun with UPDATE_GOLDEN=1 to create it.\nActual output:\n%s", path, got)
	}
	require.NoError(s.t, err)
	require.Equal(s.t, Normalize(string(want)), got, "snapshot mismatch for %s, run with UPDATE_GOLDEN=1 to update", name)
}

// Normalize strips ANSI codes, converts CRLF and trims trailing whitespace on
// every line.
func Normalize(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines splits s into lines, dropping a single trailing newline.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
