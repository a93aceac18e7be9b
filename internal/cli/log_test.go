package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/slf/internal/testutil"
)

func TestLogToEmptyFile(t *testing.T) {
	s := newSandbox(t)
	testutil.WriteLines(t, s.logPath)

	stdout, _, err := s.run("-f", s.logPath, "log", "hello")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	assert.Equal(t, []string{"2024-01-01 00:00: hello"}, testutil.ReadLines(t, s.logPath))
}

func TestLogCreatesMissingFile(t *testing.T) {
	s := newSandbox(t)

	_, _, err := s.run("-f", s.logPath, "log", "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 00:00: hello"}, testutil.ReadLines(t, s.logPath))
}

func TestLogJoinsArguments(t *testing.T) {
	s := newSandbox(t)

	_, _, err := s.run("-f", s.logPath, "log", "shipped", "the", "release", "#work")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 00:00: shipped the release #work"}, testutil.ReadLines(t, s.logPath))
}

func TestLogNewestFirst(t *testing.T) {
	s := newSandbox(t)

	_, _, err := s.run("-f", s.logPath, "log", "first")
	require.NoError(t, err)
	s.clock.Advance(26 * time.Hour)
	_, _, err = s.run("-f", s.logPath, "log", "second")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2024-01-02 02:00: second",
		"2024-01-01 00:00: first",
	}, testutil.ReadLines(t, s.logPath))
}

func TestLogUsesConfiguredPath(t *testing.T) {
	s := newSandbox(t)
	configured := filepath.Join(s.home, "from-config.slf")
	s.writeConfig(configured)

	_, _, err := s.run("log", "via config")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 00:00: via config"}, testutil.ReadLines(t, configured))
}

func TestLogFileFlagOverridesConfig(t *testing.T) {
	s := newSandbox(t)
	configured := filepath.Join(s.home, "from-config.slf")
	s.writeConfig(configured)

	_, _, err := s.run("--file", s.logPath, "log", "via flag")
	require.NoError(t, err)
	assert.FileExists(t, s.logPath)
	assert.NoFileExists(t, configured)
}

func TestLogExpandsTildeInConfig(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME does not drive the home directory on windows")
	}
	s := newSandbox(t)
	s.writeConfig("~/notes/me.slf")

	_, _, err := s.run("log", "tilde")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 00:00: tilde"}, testutil.ReadLines(t, filepath.Join(s.home, "notes", "me.slf")))
}

func TestLogBrokenConfigFallsBackSilently(t *testing.T) {
	s := newSandbox(t)
	s.writeConfig("x'\n[[[")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, stderr, err := s.run("log", "fallback")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"2024-01-01 00:00: fallback"}, testutil.ReadLines(t, "log.slf"))
}

func TestLogMissingMessage(t *testing.T) {
	s := newSandbox(t)

	_, _, err := s.run("-f", s.logPath, "log")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestLogRejectsMultiline(t *testing.T) {
	s := newSandbox(t)
	testutil.WriteLines(t, s.logPath, "2023-12-31 00:00: old")

	_, _, err := s.run("-f", s.logPath, "log", "two\nlines")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, []string{"2023-12-31 00:00: old"}, testutil.ReadLines(t, s.logPath))
}

func TestLogUnwritableLocation(t *testing.T) {
	s := newSandbox(t)

	// A directory cannot be read as a log file.
	_, _, err := s.run("-f", s.home, "log", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "cannot log")
}

func TestLogJSON(t *testing.T) {
	s := newSandbox(t)

	stdout, _, err := s.run("--format", "json", "-f", s.logPath, "log", "hello")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   LogResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, LogResult{File: s.logPath, Line: "2024-01-01 00:00: hello"}, resp.Data)
}

func TestLogYAML(t *testing.T) {
	s := newSandbox(t)

	stdout, _, err := s.run("--format", "yaml", "-f", s.logPath, "log", "hello")
	require.NoError(t, err)

	var resp struct {
		Status string    `yaml:"status"`
		Data   LogResult `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2024-01-01 00:00: hello", resp.Data.Line)
}
