package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sghaida/bddkit/app"
)

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask N",
		Short: "Check whether N is the meaning of life and record the guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ask: %q is not a number", args[0])
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				g, err := app.PlayWithDeps(ctx, app.Game{}, e.deps, e.session, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (guess #%d)\n", g.Verdict, g.ID)
				return nil
			})
		},
	}
}
