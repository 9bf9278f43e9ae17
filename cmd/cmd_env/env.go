// Package cmd_env carries the per-run state shared by all subcommands.
package cmd_env

import (
	"context"

	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/codec"
	"github.com/rskv-p/kata/config"
	"github.com/spf13/cobra"
)

type envKey struct{}

// Env is built once by the root command before any subcommand runs.
type Env struct {
	Config *config.Config
	Out    *codec.Writer
	RunID  string
}

// WithEnv stores env in ctx.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// FromCmd returns the Env attached to cmd's context. Commands run outside
// the root get defaults writing to cmd's stdout.
func FromCmd(cmd *cobra.Command) *Env {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok {
			return env
		}
	}
	cfg := config.Default()
	return &Env{
		Config: cfg,
		Out:    codec.NewWriter(cmd.OutOrStdout(), cfg.JSONOutput),
	}
}

// Context returns cmd's context, or Background when none is set.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Options returns the operation options derived from config.
func (e *Env) Options() act.Options {
	return act.Options{DecodeListLimit: e.Config.DecodeListLimit}
}

// RunAction executes a through act.Run and prints its result. A failed
// operation is printed as an error result and its error returned.
func RunAction(cmd *cobra.Command, a *act.Action) error {
	env := FromCmd(cmd)
	res, err := act.Run(Context(cmd), a, env.Options())
	if writeErr := env.Out.Write(res); writeErr != nil && err == nil {
		err = writeErr
	}
	return err
}
