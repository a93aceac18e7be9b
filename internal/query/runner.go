package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// EmitFunc receives each matching line, unmodified and without its newline.
// Returning an error stops the run.
type EmitFunc func(line string) error

// Run scans r line by line in order, emitting every line f accepts. It stops
// reading as soon as limit lines were emitted; limit <= 0 reads to the end.
// It returns the number of emitted lines.
func Run(r io.Reader, f *Filter, limit int, emit EmitFunc) (int, error) {
	br := bufio.NewReader(r)
	count := 0
	for {
		if limit > 0 && count >= limit {
			return count, nil
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return count, fmt.Errorf("read log: %w", err)
		}
		if line == "" && err != nil {
			return count, nil
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if f.Match(line) {
			if emitErr := emit(line); emitErr != nil {
				return count, emitErr
			}
			count++
		}

		if err != nil {
			return count, nil
		}
	}
}

// RunFile opens path and runs the query over it. A missing file is an error:
// there is nothing sensible to scan.
func RunFile(path string, f *Filter, limit int, emit EmitFunc) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	return Run(file, f, limit, emit)
}

// Collect runs the query over r and returns the matching lines.
func Collect(r io.Reader, f *Filter, limit int) ([]string, error) {
	var lines []string
	_, err := Run(r, f, limit, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}
