package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: sample
description: two cases
cases:
  - input: "1"
    target: int8
    expect:
      result: "1"
  - input: "3.5"
    target: int8
    expect:
      cause: PRECISION_LOSS
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Cases, 2)
	assert.Equal(t, "int8", s.Cases[0].Target)
	assert.Equal(t, "PRECISION_LOSS", s.Cases[1].Expect.Cause)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadScenarioBadYAML(t *testing.T) {
	path := writeScenario(t, "name: [unterminated")
	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "missing name",
			scenario: Scenario{Cases: []Case{{Input: "1", Target: "int8", Expect: Expect{Result: "1"}}}},
			wantErr:  "name is required",
		},
		{
			name:     "no cases",
			scenario: Scenario{Name: "empty"},
			wantErr:  "has no cases",
		},
		{
			name: "missing input",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Target: "int8", Expect: Expect{Result: "1"}},
			}},
			wantErr: "input is required",
		},
		{
			name: "missing target",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Input: "1", Expect: Expect{Result: "1"}},
			}},
			wantErr: "target is required",
		},
		{
			name: "unknown target",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Input: "1", Target: "uint8", Expect: Expect{Result: "1"}},
			}},
			wantErr: "unknown kind",
		},
		{
			name: "both result and cause",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Input: "1", Target: "int8", Expect: Expect{Result: "1", Cause: "PRECISION_LOSS"}},
			}},
			wantErr: "exactly one of result or cause",
		},
		{
			name: "neither result nor cause",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Input: "1", Target: "int8"},
			}},
			wantErr: "exactly one of result or cause",
		},
		{
			name: "unknown cause",
			scenario: Scenario{Name: "s", Cases: []Case{
				{Input: "1", Target: "int8", Expect: Expect{Cause: "OUT_OF_CHEESE"}},
			}},
			wantErr: "unknown cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenarioValidateOK(t *testing.T) {
	exact := true
	s := Scenario{Name: "s", Cases: []Case{
		{Input: "1", Target: "decimal", Expect: Expect{Result: "1", Exact: &exact}},
	}}
	require.NoError(t, s.Validate())
}
