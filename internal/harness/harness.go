package harness

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roach88/slf/internal/config"
	"github.com/roach88/slf/internal/logfile"
	"github.com/roach88/slf/internal/query"
	"github.com/roach88/slf/internal/testutil"
)

// Result is everything a scenario run observed.
type Result struct {
	// Steps holds one entry per scenario step.
	Steps []StepResult

	// File is the final log file content, nil when the file does not exist.
	File []string
}

// StepResult is the outcome of one step.
type StepResult struct {
	Kind   string
	Output []string
	Err    error

	// ConfigBefore and ConfigAfter snapshot the config file around init
	// steps. Nil means the file did not exist.
	ConfigBefore []byte
	ConfigAfter  []byte
}

// Harness executes scenarios inside a working directory.
type Harness struct {
	dir        string
	logPath    string
	configPath string
	clock      *testutil.FixedClock
	logger     *slog.Logger
}

// New creates a harness rooted at dir, which should be empty.
func New(dir string, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{
		dir:        dir,
		logPath:    filepath.Join(dir, "log.slf"),
		configPath: filepath.Join(dir, "config", config.AppName, config.AppName+".toml"),
		logger:     logger,
	}
}

// Run executes s and returns what happened. It only fails for problems with
// the scenario itself or the working directory; step failures are recorded
// in the result.
func (h *Harness) Run(s *Scenario) (*Result, error) {
	start, err := s.start()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	h.clock = testutil.NewFixedClock(start)

	if s.File != nil {
		if err := writeLines(h.logPath, s.File); err != nil {
			return nil, fmt.Errorf("scenario %s: seed log file: %w", s.Name, err)
		}
	}

	result := &Result{Steps: make([]StepResult, 0, len(s.Steps))}
	for i, step := range s.Steps {
		if step.Advance != "" {
			d, err := time.ParseDuration(step.Advance)
			if err != nil {
				return nil, fmt.Errorf("scenario %s step %d: %w", s.Name, i+1, err)
			}
			h.clock.Advance(d)
		}
		sr := h.runStep(step)
		h.logger.Debug("step finished", "scenario", s.Name, "step", i+1, "kind", sr.Kind, "error", sr.Err)
		result.Steps = append(result.Steps, sr)
	}

	file, err := readLines(h.logPath)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: read log file: %w", s.Name, err)
	}
	result.File = file
	return result, nil
}

func (h *Harness) runStep(step Step) StepResult {
	sr := StepResult{Kind: step.Kind()}
	switch sr.Kind {
	case StepLog:
		_, sr.Err = logfile.Record(h.logPath, *step.Log, h.clock.Now())
	case StepQuery:
		q := step.Query
		p := query.Params{Begin: q.Begin, End: q.End, Tags: q.Tags, Recent: q.Recent, Limit: q.Limit}
		sr.Output = []string{}
		_, sr.Err = query.RunFile(h.logPath, query.NewFilter(p, h.clock.Now()), p.Limit, func(line string) error {
			sr.Output = append(sr.Output, line)
			return nil
		})
	case StepInit:
		sr.ConfigBefore = snapshot(h.configPath)
		_, sr.Err = config.Init(h.configPath)
		sr.ConfigAfter = snapshot(h.configPath)
	default:
		sr.Err = errors.New("step has no operation")
	}
	return sr
}

// RunScenario runs s in dir with a fresh harness.
func RunScenario(dir string, s *Scenario) (*Result, error) {
	return New(dir, nil).Run(s)
}

func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func readLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	content := strings.TrimSuffix(string(b), "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

func snapshot(path string) []byte {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return b
}
