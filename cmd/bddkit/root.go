package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/bddkit/app"
	"github.com/sghaida/bddkit/guess"
	"github.com/sghaida/bddkit/internal/config"
	"github.com/sghaida/bddkit/internal/logging"
	"github.com/sghaida/bddkit/life"
)

type options struct {
	configPath string
	dbPath     string
}

// env is what a subcommand gets once config, logger and store are up.
type env struct {
	deps    app.Container
	session string
	close   func() error
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "bddkit",
		Short:         "Guess the meaning of life and keep score",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides config)")

	root.AddCommand(newAskCmd(opts), newGuessesCmd(opts))
	return root
}

// setup loads the configuration and wires the container for one command run.
func setup(ctx context.Context, opts *options) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	store, err := guess.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	session := uuid.New().String()
	logger = logger.With(zap.String("env", cfg.Env))

	deps, err := app.NewContainer(life.Life{Delay: cfg.CheckDelay}, store, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	logger.Debug("bddkit ready", zap.String("db", cfg.DBPath), zap.Duration("check_delay", cfg.CheckDelay))

	return &env{
		deps:    deps,
		session: session,
		close: func() error {
			// Sync on stderr fails on some platforms; only the store error matters.
			_ = logger.Sync()
			return store.Close()
		},
	}, nil
}

// withEnv runs fn inside a fully wired env and closes it afterwards.
func withEnv(cmd *cobra.Command, opts *options, fn func(ctx context.Context, e *env) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close: %w", cerr))
		}
	}()
	return fn(ctx, e)
}
