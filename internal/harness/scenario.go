package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario defines one end-to-end test of the logger.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Now is the starting clock value, RFC 3339.
	Now string `yaml:"now"`

	// File is the initial log file content, one entry per line.
	// Nil means the log file does not exist.
	File []string `yaml:"file,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`

	// ExpectFile is the log file content after all steps. Nil skips the check.
	ExpectFile []string `yaml:"expect_file,omitempty"`
}

// Step is one operation against the scenario's log file.
type Step struct {
	// Advance moves the clock forward before the step (Go duration syntax).
	Advance string `yaml:"advance,omitempty"`

	// Log records a message.
	Log *string `yaml:"log,omitempty"`

	// Query runs a query.
	Query *QuerySpec `yaml:"query,omitempty"`

	// Init creates the default config.
	Init bool `yaml:"init,omitempty"`

	// Expect is the exact query output. Nil skips the check.
	Expect []string `yaml:"expect,omitempty"`

	// ExpectError is a substring of the expected error. Empty means the step
	// must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// QuerySpec mirrors the query command's flags.
type QuerySpec struct {
	Begin  string   `yaml:"begin,omitempty"`
	End    string   `yaml:"end,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
	Recent *int     `yaml:"recent,omitempty"`
	Limit  int      `yaml:"limit,omitempty"`
}

// Step kinds.
const (
	StepLog   = "log"
	StepQuery = "query"
	StepInit  = "init"
)

// Kind reports which operation the step performs.
func (s Step) Kind() string {
	switch {
	case s.Log != nil:
		return StepLog
	case s.Query != nil:
		return StepQuery
	case s.Init:
		return StepInit
	}
	return ""
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expected:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Description == "" {
		return errors.New("description is required")
	}
	if _, err := s.start(); err != nil {
		return fmt.Errorf("now: %w", err)
	}
	if len(s.Steps) == 0 {
		return errors.New("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		n := 0
		if step.Log != nil {
			n++
		}
		if step.Query != nil {
			n++
		}
		if step.Init {
			n++
		}
		if n != 1 {
			return fmt.Errorf("step %d: exactly one of log, query, init is required", i+1)
		}
		if step.Expect != nil && step.Query == nil {
			return fmt.Errorf("step %d: expect is only valid on query steps", i+1)
		}
		if step.Advance != "" {
			d, err := time.ParseDuration(step.Advance)
			if err != nil {
				return fmt.Errorf("step %d: advance: %w", i+1, err)
			}
			if d < 0 {
				return fmt.Errorf("step %d: advance must not be negative", i+1)
			}
		}
	}
	return nil
}

// start parses Now.
func (s *Scenario) start() (time.Time, error) {
	if s.Now == "" {
		return time.Time{}, errors.New("now is required")
	}
	return time.Parse(time.RFC3339, s.Now)
}
