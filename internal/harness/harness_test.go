package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			result, err := RunScenario(t.TempDir(), s)
			require.NoError(t, err)

			for _, failure := range Verify(s, result) {
				t.Error(failure)
			}
		})
	}
}

func TestRun_RecordsStepOutcomes(t *testing.T) {
	msg := "hello"
	s := &Scenario{
		Name:        "outcomes",
		Description: "outcomes",
		Now:         "2024-01-01T00:00:00Z",
		Steps: []Step{
			{Query: &QuerySpec{}},
			{Log: &msg},
			{Query: &QuerySpec{}},
		},
	}

	result, err := RunScenario(t.TempDir(), s)
	require.NoError(t, err)
	require.Len(t, result.Steps, 3)

	assert.Error(t, result.Steps[0].Err)
	assert.NoError(t, result.Steps[1].Err)
	assert.Equal(t, []string{"2024-01-01 00:00: hello"}, result.Steps[2].Output)
	assert.Equal(t, []string{"2024-01-01 00:00: hello"}, result.File)
}

func TestRun_NoFileLeavesResultFileNil(t *testing.T) {
	s := &Scenario{
		Name:        "nothing",
		Description: "nothing",
		Now:         "2024-01-01T00:00:00Z",
		Steps:       []Step{{Query: &QuerySpec{}}},
	}

	result, err := RunScenario(t.TempDir(), s)
	require.NoError(t, err)
	assert.Nil(t, result.File)
}

func TestRun_BadNow(t *testing.T) {
	_, err := RunScenario(t.TempDir(), &Scenario{Name: "x", Now: "later"})
	require.Error(t, err)
}

func TestVerify_ReportsMismatches(t *testing.T) {
	s := &Scenario{
		Steps: []Step{
			{Query: &QuerySpec{}, Expect: []string{"a"}},
			{Query: &QuerySpec{}, ExpectError: "boom"},
			{Query: &QuerySpec{}},
			{Init: true, ExpectError: "exists"},
		},
		ExpectFile: []string{"x"},
	}
	r := &Result{
		Steps: []StepResult{
			{Kind: StepQuery, Output: []string{"b"}},
			{Kind: StepQuery},
			{Kind: StepQuery, Err: errors.New("unexpected")},
			{Kind: StepInit, Err: errors.New("config file already exists"), ConfigBefore: []byte("a"), ConfigAfter: []byte("b")},
		},
	}

	failures := Verify(s, r)
	require.Len(t, failures, 5)
	assert.Contains(t, failures[0], "output mismatch")
	assert.Contains(t, failures[1], "got none")
	assert.Contains(t, failures[2], "unexpected error")
	assert.Contains(t, failures[3], "modified the config file")
	assert.Contains(t, failures[4], "log file does not exist")
}

func TestVerify_StepCountMismatch(t *testing.T) {
	failures := Verify(&Scenario{Steps: []Step{{Init: true}}}, &Result{})
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "ran 0 steps")
}

func TestVerify_WrongErrorText(t *testing.T) {
	s := &Scenario{Steps: []Step{{Init: true, ExpectError: "exists"}}}
	r := &Result{Steps: []StepResult{{Kind: StepInit, Err: errors.New("permission denied")}}}

	failures := Verify(s, r)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "does not contain")
}
