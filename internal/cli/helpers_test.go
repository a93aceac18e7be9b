package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/slf/internal/testutil"
)

// sandbox is an isolated home directory with a config and a log file path.
type sandbox struct {
	t          *testing.T
	home       string
	configPath string
	logPath    string
	clock      *testutil.FixedClock
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return &sandbox{
		t:          t,
		home:       home,
		configPath: filepath.Join(home, "cfg", "slf.toml"),
		logPath:    filepath.Join(home, "log.slf"),
		clock:      testutil.MustParseClock("2024-01-01T00:00:00Z"),
	}
}

// writeConfig points the sandbox config at path.
func (s *sandbox) writeConfig(path string) {
	s.t.Helper()
	require.NoError(s.t, os.MkdirAll(filepath.Dir(s.configPath), 0o755))
	require.NoError(s.t, os.WriteFile(s.configPath, []byte("path = '"+path+"'\n"), 0o644))
}

// run executes slf with the sandbox config and clock.
func (s *sandbox) run(args ...string) (string, string, error) {
	s.t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCommand(&RootOptions{Clock: s.clock})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", s.configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
