package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/slf/internal/logline"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (I/O errors, disk full, permission denied)
	ExitCommandError = 2 // Command error (bad flags, config already exists, log file not found)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
// Diagnostics never go through it; they are logged to stderr.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard envelope for one-shot JSON and YAML output.
type CLIResponse struct {
	Status string `json:"status" yaml:"status"`                 // "ok"
	Data   any    `json:"data,omitempty" yaml:"data,omitempty"` // success payload
}

// Structured reports whether output is machine-readable.
func (f *OutputFormatter) Structured() bool {
	return f.Format == "json" || f.Format == "yaml"
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	resp := CLIResponse{Status: "ok", Data: data}
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetEscapeHTML(false)
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// EntryStream writes query results as they are found.
//
// Text output is the raw line. JSON output is one logline.Entry object per
// line (no envelope, so results can be piped line by line). YAML output is
// one document per entry.
type EntryStream struct {
	f    *OutputFormatter
	json *json.Encoder
	yaml *yaml.Encoder
}

// Stream starts an EntryStream. Callers must Close it.
func (f *OutputFormatter) Stream() *EntryStream {
	s := &EntryStream{f: f}
	switch f.Format {
	case "json":
		s.json = json.NewEncoder(f.Writer)
		s.json.SetEscapeHTML(false)
	case "yaml":
		s.yaml = yaml.NewEncoder(f.Writer)
	}
	return s
}

// Write outputs one matching line.
func (s *EntryStream) Write(line string) error {
	switch {
	case s.json != nil:
		return s.json.Encode(logline.Split(line))
	case s.yaml != nil:
		return s.yaml.Encode(logline.Split(line))
	}
	_, err := io.WriteString(s.f.Writer, line+"\n")
	return err
}

// Close flushes buffered output.
func (s *EntryStream) Close() error {
	if s.yaml != nil {
		return s.yaml.Close()
	}
	return nil
}
