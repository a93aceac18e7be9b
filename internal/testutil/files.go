package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteLines writes lines to path, one per line with a trailing newline,
// and returns path. Parent directories are created.
func WriteLines(t testing.TB, path string, lines ...string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// LogFile creates a log file holding lines inside a fresh temp dir.
func LogFile(t testing.TB, lines ...string) string {
	t.Helper()
	return WriteLines(t, filepath.Join(t.TempDir(), "log.slf"), lines...)
}

// ReadLines returns the lines of path without their newlines.
// An empty file yields an empty, non-nil slice.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	content := strings.TrimSuffix(string(b), "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}
