package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numcast/internal/harness"
)

// CheckResult aggregates the outcome of one check run.
type CheckResult struct {
	Scenarios []*harness.Result `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run conformance scenarios against the engine",
		Long: `Run one or more YAML conversion scenarios and report per-case results.

A scenario that cannot be loaded is a command error (exit 2); a loaded
scenario with failing cases is a check failure (exit 1).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	result := CheckResult{Scenarios: make([]*harness.Result, 0, len(paths))}
	for _, path := range paths {
		s, err := harness.LoadScenario(path)
		if err != nil {
			_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
			return WrapExitError(ExitCommandError, "load scenario", err)
		}
		formatter.VerboseLog("Running scenario %q (%d cases)", s.Name, len(s.Cases))

		r := harness.Run(s)
		result.Scenarios = append(result.Scenarios, r)
		result.Passed += r.Passed
		result.Failed += r.Failed
	}

	if err := outputCheckResult(formatter, result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("check failed: %d case(s)", result.Failed))
	}
	return nil
}

func outputCheckResult(formatter *OutputFormatter, result CheckResult) error {
	if formatter.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    "CHECK_FAILED",
				Message: fmt.Sprintf("%d case(s) failed", result.Failed),
			}
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	}

	// Text format
	for _, r := range result.Scenarios {
		fmt.Fprintf(formatter.Writer, "scenario %s: %d passed, %d failed\n", r.Scenario, r.Passed, r.Failed)
		for _, c := range r.Cases {
			if c.Pass {
				continue
			}
			fmt.Fprintf(formatter.Writer, "  FAIL %s -> %s: %s\n", c.Input, c.Target, c.Detail)
		}
	}
	return nil
}
