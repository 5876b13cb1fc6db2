package harness

import (
	"errors"
	"fmt"

	"github.com/roach88/numcast/numeric"
)

// CaseResult records the outcome of one conversion case. Field order is
// the JSON order used in golden traces.
type CaseResult struct {
	Input  string `json:"input"`
	Target string `json:"target"`

	// Status is "ok" or "error": what the engine actually did.
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Cause  string `json:"cause,omitempty"`

	// Exact is the exactness-probe answer, present only when the case
	// asserted one.
	Exact *bool `json:"exact,omitempty"`

	// Pass reports whether the outcome matched the expectation.
	Pass bool `json:"pass"`

	// Detail explains a failed expectation.
	Detail string `json:"detail,omitempty"`
}

// Result is the outcome of a full scenario run.
type Result struct {
	Scenario string       `json:"scenario"`
	Cases    []CaseResult `json:"cases"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
}

// Run executes every case of a validated scenario against the engine.
// Case failures are recorded in the result, not returned as errors.
func Run(s *Scenario) *Result {
	result := &Result{Scenario: s.Name, Cases: make([]CaseResult, 0, len(s.Cases))}
	for _, c := range s.Cases {
		cr := runCase(c)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

func runCase(c Case) CaseResult {
	cr := CaseResult{Input: c.Input, Target: c.Target}

	// Validate guarantees the target parses; a failure here is a
	// programming error surfaced as a failed case rather than a panic.
	target, err := numeric.ParseKind(c.Target)
	if err != nil {
		cr.Status = "error"
		cr.Cause = string(numeric.CauseUnsupportedTarget)
		cr.Detail = err.Error()
		return cr
	}

	v, convErr := numeric.Parse(c.Input, target)
	if convErr != nil {
		cr.Status = "error"
		var ce *numeric.ConversionError
		if errors.As(convErr, &ce) {
			cr.Cause = string(ce.Cause)
		}
	} else {
		cr.Status = "ok"
		cr.Result = numeric.Format(v)
	}

	if c.Expect.Exact != nil {
		exact := probe(c.Input, target)
		cr.Exact = &exact
	}

	cr.Pass, cr.Detail = evaluate(c.Expect, cr)
	return cr
}

// probe answers the exactness question for a text input: parse it to the
// canonical decimal kind, then ask the predicate. Malformed input probes
// as inexact.
func probe(input string, target numeric.Kind) bool {
	d, err := numeric.Parse(input, numeric.KindDecimal)
	if err != nil {
		return false
	}
	return numeric.CanRepresentExactly(d, target)
}

// evaluate compares an actual case outcome against its expectation.
func evaluate(expect Expect, actual CaseResult) (bool, string) {
	if expect.Cause != "" {
		if actual.Status != "error" {
			return false, fmt.Sprintf("expected cause %s, got result %s", expect.Cause, actual.Result)
		}
		if actual.Cause != expect.Cause {
			return false, fmt.Sprintf("expected cause %s, got %s", expect.Cause, actual.Cause)
		}
	} else {
		if actual.Status != "ok" {
			return false, fmt.Sprintf("expected result %s, got cause %s", expect.Result, actual.Cause)
		}
		if actual.Result != expect.Result {
			return false, fmt.Sprintf("expected result %s, got %s", expect.Result, actual.Result)
		}
	}
	if expect.Exact != nil && *actual.Exact != *expect.Exact {
		return false, fmt.Sprintf("expected exact=%t, got exact=%t", *expect.Exact, *actual.Exact)
	}
	return true, ""
}
