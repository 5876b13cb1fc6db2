package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/numcast/numeric"
)

// KindInfo describes one member of the closed kind set.
type KindInfo struct {
	Name  string `json:"name"`
	Class string `json:"class"` // "integer", "float", or "decimal"
	// Min and Max bound the fixed-width integer kinds; empty for the
	// floating and arbitrary-precision kinds.
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the supported numeric kinds",
		Long: `List the closed set of supported numeric kinds with their class and,
for fixed-width integers, their representable range.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, cmd)
		},
	}

	return cmd
}

func runKinds(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	infos := kindInfos()
	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%-8s  %-8s  %s\n", info.Name, info.Class, describeRange(info))
	}
	return nil
}

func kindInfos() []KindInfo {
	infos := make([]KindInfo, 0, len(numeric.Kinds()))
	for _, k := range numeric.Kinds() {
		info := KindInfo{Name: k.String(), Class: classOf(k)}
		if min, max, ok := k.Range(); ok {
			info.Min = fmt.Sprintf("%d", min)
			info.Max = fmt.Sprintf("%d", max)
		}
		infos = append(infos, info)
	}
	return infos
}

func classOf(k numeric.Kind) string {
	switch {
	case k.IsFloat():
		return "float"
	case k == numeric.KindDecimal:
		return "decimal"
	default:
		return "integer"
	}
}

func describeRange(info KindInfo) string {
	if info.Min != "" {
		return fmt.Sprintf("[%s, %s]", info.Min, info.Max)
	}
	if info.Class == "float" {
		return "finite"
	}
	return "unbounded"
}
