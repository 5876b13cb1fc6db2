package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numcast/numeric"
)

// ProbeResult holds the outcome of an exactness probe.
type ProbeResult struct {
	Input  string `json:"input"`
	Target string `json:"target"`
	Exact  bool   `json:"exact"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <value> <kind>",
		Short: "Ask whether a value is exactly representable in a kind",
		Long: `Probe whether a decimal literal converts to a target kind without
losing information. The probe is a pure question: an inexact answer is a
successful run, not a failure.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runProbe(opts *RootOptions, input, kindName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	target, err := numeric.ParseKind(kindName)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, fmt.Sprintf("unknown kind %q", kindName), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown kind %q", kindName))
	}

	// Malformed text cannot be probed: it has no value to ask about.
	if _, convErr := numeric.Parse(input, numeric.KindDecimal); convErr != nil {
		cause := causeOf(convErr)
		_ = formatter.Error(cause, convErr.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("probe failed: %s", cause))
	}

	result := ProbeResult{
		Input:  input,
		Target: target.String(),
		Exact:  probeExact(input, target),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "exact: %t\n", result.Exact)
	return nil
}
