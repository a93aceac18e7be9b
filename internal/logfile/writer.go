package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/slf/internal/logline"
)

const defaultMode fs.FileMode = 0o644

// Record prepends a line for message, stamped with now, to the log file at
// path and returns the line without its newline. A missing file is treated
// as empty and created, along with its parent directories.
func Record(path, message string, now time.Time) (string, error) {
	line, err := logline.Format(now, message)
	if err != nil {
		return "", err
	}

	path, err = target(path)
	if err != nil {
		return "", err
	}

	existing, mode, err := readExisting(path)
	if err != nil {
		return "", err
	}

	content := make([]byte, 0, len(line)+1+len(existing))
	content = append(content, line...)
	content = append(content, '\n')
	content = append(content, existing...)

	if err := replace(path, content, mode); err != nil {
		return "", err
	}
	return line, nil
}

// target resolves symlinks in path so the rename replaces the file a link
// points to rather than the link itself. A path that does not exist yet is
// returned unchanged.
func target(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve log file: %w", err)
	}
	return resolved, nil
}

// readExisting returns the current content and mode of path, or empty
// content and the default mode when it does not exist.
func readExisting(path string) ([]byte, fs.FileMode, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, defaultMode, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read log file: %w", err)
	}

	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return b, mode, nil
}

// replace writes content to a temp file next to path and renames it over
// path.
func replace(path string, content []byte, mode fs.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write log file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("chmod log file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace log file: %w", err)
	}
	return nil
}
