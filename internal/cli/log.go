package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numcast/internal/store"
)

// LogRecord is the JSON view of one audit record.
type LogRecord struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Input      string `json:"input"`
	SourceKind string `json:"source_kind"`
	TargetKind string `json:"target_kind"`
	Status     string `json:"status"`
	Cause      string `json:"cause,omitempty"`
	Result     string `json:"result,omitempty"`
}

// LogResult holds the audit log listing.
type LogResult struct {
	Records []LogRecord `json:"records"`
	Total   int64       `json:"total"`
	Failed  int64       `json:"failed"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List the conversion audit log",
		Long: `List every recorded conversion attempt in deterministic order
(logical sequence, then record ID).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(rootOpts, dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the audit log database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLog(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	s, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open audit log", err)
	}
	defer s.Close()

	records, err := s.List(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list audit log", err)
	}
	total, failed, err := s.Count(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeCommand, err.Error(), nil)
		return WrapExitError(ExitCommandError, "count audit log", err)
	}

	result := LogResult{Records: make([]LogRecord, 0, len(records)), Total: total, Failed: failed}
	for _, rec := range records {
		result.Records = append(result.Records, LogRecord{
			ID:         rec.ID,
			Seq:        rec.Seq,
			Input:      rec.Input,
			SourceKind: rec.SourceKind,
			TargetKind: rec.TargetKind,
			Status:     rec.Status,
			Cause:      rec.Cause,
			Result:     rec.Result,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, rec := range result.Records {
		if rec.Status == store.StatusOK {
			fmt.Fprintf(formatter.Writer, "%4d  [%s]     %s -> %s = %s\n", rec.Seq, rec.Status, rec.Input, rec.TargetKind, rec.Result)
		} else {
			fmt.Fprintf(formatter.Writer, "%4d  [%s]  %s -> %s (%s)\n", rec.Seq, rec.Status, rec.Input, rec.TargetKind, rec.Cause)
		}
	}
	fmt.Fprintf(formatter.Writer, "%d record(s), %d failed\n", result.Total, result.Failed)
	return nil
}
