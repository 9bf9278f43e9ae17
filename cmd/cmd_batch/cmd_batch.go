package cmd_batch

import (
	"fmt"
	"io"
	"os"

	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/cmd/cmd_env"
	"github.com/spf13/cobra"
)

// NewCmd builds the "batch" command.
func NewCmd() *cobra.Command {
	var stopOnError bool
	cmd := &cobra.Command{
		Use:   "batch [FILE|-]",
		Short: "Run one operation per line from FILE or stdin",
		Long: "Each non-blank line not starting with # is split with shell quoting rules: " +
			"kth K v..., kth_largest K v..., sorted v..., dump v..., count DIGITS, list DIGITS.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := cmd_env.FromCmd(cmd)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = io.Reader(f)
			}

			opts := act.ScriptOptions{
				Options:     env.Options(),
				StopOnError: env.Config.Batch.StopOnError,
			}
			if cmd.Flags().Changed("stop-on-error") {
				opts.StopOnError = stopOnError
			}

			_, err := act.RunScript(cmd_env.Context(cmd), in, opts, env.Out.Write)
			return err
		},
	}
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "halt at the first failing line (default from config)")
	return cmd
}
