package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nats-io/nuid"
	"github.com/rskv-p/kata/cmd/cmd_batch"
	"github.com/rskv-p/kata/cmd/cmd_bst"
	"github.com/rskv-p/kata/cmd/cmd_decode"
	"github.com/rskv-p/kata/cmd/cmd_env"
	"github.com/rskv-p/kata/codec"
	"github.com/rskv-p/kata/config"
	"github.com/rskv-p/kata/pkg/x_log"
	"github.com/rskv-p/kata/recover"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		jsonOut    bool
	)

	rootCmd := &cobra.Command{
		Use:           "kata",
		Short:         "BST k-th selection and digit decoding katas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("json") {
				cfg.JSONOutput = jsonOut
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			x_log.InitWithConfig(&cfg.Log, cfg.ServiceName)

			runID := nuid.Next()
			l := x_log.New("cli").With().Str("run", runID).Logger()
			l.Debug().Str("op", cmd.CommandPath()).Msg("start")

			ctx := x_log.WithLogger(cmd_env.Context(cmd), &l)
			ctx = cmd_env.WithEnv(ctx, &cmd_env.Env{
				Config: cfg,
				Out:    codec.NewWriter(cmd.OutOrStdout(), cfg.JSONOutput),
				RunID:  runID,
			})
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config (default $KATA_CONFIG, then KATA_* env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON lines")

	rootCmd.AddCommand(cmd_bst.NewCmd())
	rootCmd.AddCommand(cmd_decode.NewCmd())
	rootCmd.AddCommand(cmd_batch.NewCmd())
	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithFallback()
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code. The log
// file is closed on every path; a panic is logged and exits 1.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	code = 1
	defer x_log.Close()
	defer recover.RecoverWithContext("cli", "Execute", args)

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		x_log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
