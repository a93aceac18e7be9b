package harness

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Verify compares a result against the scenario's expectations and returns
// one message per mismatch. An empty slice means the scenario passed.
func Verify(s *Scenario, r *Result) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if len(r.Steps) != len(s.Steps) {
		fail("ran %d steps, scenario has %d", len(r.Steps), len(s.Steps))
		return failures
	}

	for i, step := range s.Steps {
		got := r.Steps[i]
		n := i + 1

		switch {
		case step.ExpectError == "" && got.Err != nil:
			fail("step %d (%s): unexpected error: %v", n, got.Kind, got.Err)
		case step.ExpectError != "" && got.Err == nil:
			fail("step %d (%s): expected error containing %q, got none", n, got.Kind, step.ExpectError)
		case step.ExpectError != "" && !strings.Contains(got.Err.Error(), step.ExpectError):
			fail("step %d (%s): error %q does not contain %q", n, got.Kind, got.Err, step.ExpectError)
		}

		if step.Expect != nil {
			if diff := cmp.Diff(step.Expect, got.Output); diff != "" {
				fail("step %d (%s): output mismatch (-want +got):\n%s", n, got.Kind, diff)
			}
		}

		// A failed init must leave an existing config byte-for-byte intact.
		if got.Kind == StepInit && got.Err != nil && !bytes.Equal(got.ConfigBefore, got.ConfigAfter) {
			fail("step %d (init): failed init modified the config file", n)
		}
	}

	if s.ExpectFile != nil {
		if r.File == nil {
			fail("log file does not exist, expected %d lines", len(s.ExpectFile))
		} else if diff := cmp.Diff(s.ExpectFile, r.File); diff != "" {
			fail("log file mismatch (-want +got):\n%s", diff)
		}
	}

	return failures
}
