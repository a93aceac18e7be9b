package logline

import (
	"errors"
	"strings"
	"time"
)

const (
	// TimestampLayout is the timestamp prefix of every log line.
	TimestampLayout = "2006-01-02 15:04"

	// DateLayout is the date-only layout used for synthetic day bounds.
	DateLayout = "2006-01-02"

	// Separator sits between the timestamp and the message.
	Separator = ": "

	// TagPrefix marks a tag inside a message.
	TagPrefix = "#"
)

// ErrMultiline is returned when a message would span more than one line.
var ErrMultiline = errors.New("message must be a single line")

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Date formats t in UTC using DateLayout.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Format builds the line for message at time t, without a trailing newline.
func Format(t time.Time, message string) (string, error) {
	if strings.ContainsAny(message, "\r\n") {
		return "", ErrMultiline
	}
	return Timestamp(t) + Separator + message, nil
}

// Tag returns the substring a line must contain to carry tag.
func Tag(tag string) string {
	return TagPrefix + tag
}

// Entry is the structured view of a line, used for machine-readable output.
// Filtering never goes through Entry.
type Entry struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Message   string `json:"message" yaml:"message"`
	Line      string `json:"line" yaml:"line"`
}

// Split cuts line at the first separator. A line without a separator yields
// an empty timestamp and the whole line as message.
func Split(line string) Entry {
	ts, msg, ok := strings.Cut(line, Separator)
	if !ok {
		return Entry{Message: line, Line: line}
	}
	return Entry{Timestamp: ts, Message: msg, Line: line}
}
