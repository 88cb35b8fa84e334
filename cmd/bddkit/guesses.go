package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sghaida/bddkit/guess"
)

func newGuessesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guesses",
		Short: "Inspect and prune recorded guesses",
	}
	cmd.AddCommand(newListCmd(opts), newShowCmd(opts), newDeleteCmd(opts))
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every recorded guess",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				gs, err := e.deps.Guesses().List(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), gs)
				}
				return writeTable(cmd.OutOrStdout(), gs)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print one guess as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				g, err := e.deps.Guesses().Read(ctx, id)
				if err != nil {
					return notFound(id, err)
				}
				return writeJSON(cmd.OutOrStdout(), g)
			})
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one guess",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, opts, func(ctx context.Context, e *env) error {
				if err := e.deps.Guesses().Delete(ctx, id); err != nil {
					return notFound(id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted guess #%d\n", id)
				return nil
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func notFound(id int64, err error) error {
	if errors.Is(err, guess.ErrNotFound) {
		return fmt.Errorf("no guess #%d: %w", id, err)
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, gs []guess.Guess) error {
	if len(gs) == 0 {
		_, err := fmt.Fprintln(w, "no guesses yet")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tN\tVERDICT\tSESSION\tAT")
	for _, g := range gs {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", g.ID, g.N, g.Verdict, g.Session, g.CreatedAt.Local().Format(time.RFC3339))
	}
	return tw.Flush()
}
