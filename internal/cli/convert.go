package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numcast/internal/store"
	"github.com/roach88/numcast/numeric"
)

// ConvertResult holds the outcome of a successful conversion.
type ConvertResult struct {
	Input  string `json:"input"`
	Target string `json:"target"`
	Result string `json:"result"`
	// Exact reports whether the input is exactly representable in the
	// target, per the exactness predicate.
	Exact bool `json:"exact"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "convert <value> <kind>",
		Short: "Convert a numeric literal to a target kind",
		Long: `Convert a decimal literal to a target kind.

The conversion refuses to lose information: a fractional value against an
integer kind fails with PRECISION_LOSS, an out-of-range value fails with
TARGET_TOO_NARROW, and text outside the strict decimal grammar fails with
MALFORMED_INPUT.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], args[1], logPath, cmd)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "append the attempt to the audit log database at this path")

	return cmd
}

func runConvert(opts *RootOptions, input, kindName, logPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	target, err := numeric.ParseKind(kindName)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, fmt.Sprintf("unknown kind %q", kindName), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown kind %q", kindName))
	}

	v, convErr := numeric.Parse(input, target)

	if logPath != "" {
		if err := appendAuditRecord(cmd, logPath, input, target, v, convErr); err != nil {
			_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
			return WrapExitError(ExitCommandError, "audit log append failed", err)
		}
		formatter.VerboseLog("Logged attempt to %s", logPath)
	}

	if convErr != nil {
		cause := causeOf(convErr)
		_ = formatter.Error(cause, convErr.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("conversion failed: %s", cause))
	}

	result := ConvertResult{
		Input:  input,
		Target: target.String(),
		Result: numeric.Format(v),
		Exact:  probeExact(input, target),
	}
	formatter.VerboseLog("Parsed %q as %s", input, target)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, result.Result)
	return nil
}

// appendAuditRecord records one conversion attempt, success or failure, in
// the SQLite audit log.
func appendAuditRecord(cmd *cobra.Command, logPath, input string, target numeric.Kind, v any, convErr error) error {
	s, err := store.Open(logPath)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Append(cmd.Context(), store.NewRecord(input, store.SourceText, target, v, convErr))
	return err
}

// causeOf extracts the cause code from a conversion error. Non-conversion
// errors report the command error code.
func causeOf(err error) string {
	var ce *numeric.ConversionError
	if errors.As(err, &ce) {
		return string(ce.Cause)
	}
	return ErrCodeCommand
}

// probeExact answers the exactness question for a text input against a
// target kind. Malformed input probes as inexact.
func probeExact(input string, target numeric.Kind) bool {
	d, err := numeric.Parse(input, numeric.KindDecimal)
	if err != nil {
		return false
	}
	return numeric.CanRepresentExactly(d, target)
}
