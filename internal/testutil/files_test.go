package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLines_ReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "log.slf")
	WriteLines(t, path, "2024-02-01 00:00: b", "2024-01-01 00:00: a")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01 00:00: b\n2024-01-01 00:00: a\n", string(raw))

	assert.Equal(t, []string{"2024-02-01 00:00: b", "2024-01-01 00:00: a"}, ReadLines(t, path))
}

func TestLogFile_Empty(t *testing.T) {
	path := LogFile(t)

	assert.Equal(t, "log.slf", filepath.Base(path))
	assert.Equal(t, []string{}, ReadLines(t, path))
}
