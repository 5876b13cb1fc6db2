package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/numcast/numeric"
)

// Scenario defines a conformance scenario: a named list of conversion
// cases with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// fixture name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Cases lists the conversions to run, in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single conversion: parse Input against Target and compare
// the outcome with Expect.
type Case struct {
	// Input is the text token fed to the parser.
	Input string `yaml:"input"`

	// Target is the target kind name, e.g. "int8" or "decimal".
	Target string `yaml:"target"`

	// Expect specifies the expected outcome.
	Expect Expect `yaml:"expect"`
}

// Expect specifies the expected outcome of a case. Exactly one of Result
// or Cause must be set.
type Expect struct {
	// Result is the expected rendered value of a successful conversion.
	Result string `yaml:"result,omitempty"`

	// Cause is the expected error cause code of a failed conversion,
	// e.g. "PRECISION_LOSS".
	Cause string `yaml:"cause,omitempty"`

	// Exact optionally asserts the exactness-probe answer for the case:
	// whether the parsed value converts losslessly to the target.
	Exact *bool `yaml:"exact,omitempty"`
}

// knownCauses is the closed set of cause codes a scenario may expect.
var knownCauses = map[string]bool{
	string(numeric.CauseMalformedInput):    true,
	string(numeric.CausePrecisionLoss):     true,
	string(numeric.CauseTargetTooNarrow):   true,
	string(numeric.CauseUnsupportedSource): true,
	string(numeric.CauseUnsupportedTarget): true,
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks scenario structure before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("scenario %q has no cases", s.Name)
	}

	for i, c := range s.Cases {
		if c.Input == "" {
			return fmt.Errorf("case %d: input is required", i)
		}
		if c.Target == "" {
			return fmt.Errorf("case %d: target is required", i)
		}
		if _, err := numeric.ParseKind(c.Target); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
		hasResult := c.Expect.Result != ""
		hasCause := c.Expect.Cause != ""
		if hasResult == hasCause {
			return fmt.Errorf("case %d: expect exactly one of result or cause", i)
		}
		if hasCause && !knownCauses[c.Expect.Cause] {
			return fmt.Errorf("case %d: unknown cause %q", i, c.Expect.Cause)
		}
	}
	return nil
}
