package cmd_decode

import (
	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/cmd/cmd_env"
	"github.com/spf13/cobra"
)

// NewCmd builds the "decode" command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Digit-string decoding (1=A ... 26=Z)",
	}
	cmd.AddCommand(newCountCmd(), newListCmd())
	return cmd
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "count DIGITS",
		Short:   "Print the number of ways DIGITS decodes into letters",
		Example: "  kata decode count 226",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd_env.RunAction(cmd, act.NewAction(act.OpCount, args...))
		},
	}
}

func newListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list DIGITS",
		Short: "Print every decoding of DIGITS, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") {
				cmd_env.FromCmd(cmd).Config.DecodeListLimit = limit
			}
			return cmd_env.RunAction(cmd, act.NewAction(act.OpList, args...))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum decodings to print, 0 for all (default from config)")
	return cmd
}
