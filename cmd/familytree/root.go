package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gyaneshwarpardhi/familytree/internal/api"
	"github.com/gyaneshwarpardhi/familytree/internal/command"
	"github.com/gyaneshwarpardhi/familytree/internal/config"
	"github.com/gyaneshwarpardhi/familytree/internal/family"
	"github.com/gyaneshwarpardhi/familytree/internal/logging"
	"github.com/gyaneshwarpardhi/familytree/internal/repl"
)

type options struct {
	configPath  string
	metricsAddr string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "familytree",
		Short: "Build a family tree from short relation commands",
		Long: `familytree reads commands of the form [Person1] [Relation] [Person2]
from standard input and keeps the resulting family graph in memory.

Relations:
  P   Person2 is Person1's parent
  C   Person2 is Person1's child
  S   Person2 is Person1's sibling
  PS  Person2 is Person1's aunt/uncle

PRINT shows the tree of the oldest ancestor with the most descendants,
CLEAR forgets everyone, EXIT quits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", os.Getenv("FAMILYTREE_CONFIG"), "settings file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	return cmd
}

func run(ctx context.Context, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(opts.configPath)
	if err != nil {
		return err
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		return err
	}
	metricsAddr := cfg.Metrics.Addr
	if opts.metricsAddr != "" {
		metricsAddr = opts.metricsAddr
	}

	level := cfg.Log.SlogLevel()
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.Setup(stderr, level)

	settings, err := repl.SettingsFrom(cfg)
	if err != nil {
		return err
	}

	// ── Session ──────────────────────────────────────────────────────────────
	interp := command.NewInterpreter(family.NewTree(), command.DefaultRegistry(), logger)
	reader := repl.NewScannerReader(stdin)
	defer reader.Close()
	session := repl.New(reader, stdout, interp,
		repl.WithSettings(settings),
		repl.WithInteractive(isTerminal(stdin)),
		repl.WithLogger(logger),
	)

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		if err := config.Validate(newCfg); err != nil {
			logger.Warn("hot-reload skipped: config invalid", "err", err)
			return
		}
		s, err := repl.SettingsFrom(newCfg)
		if err != nil {
			logger.Warn("hot-reload skipped: display settings", "err", err)
			return
		}
		session.SwapSettings(s)
		if !opts.verbose {
			logging.Level.Set(newCfg.Log.SlogLevel())
		}
	})
	stopWatch, err := loader.Watch()
	switch {
	case errors.Is(err, config.ErrNoFile):
	case err != nil:
		logger.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	default:
		defer stopWatch()
	}

	// ── Run session and metrics listener ─────────────────────────────────────
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer stop()
		err := session.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if metricsAddr != "" {
		g.Go(func() error {
			return api.Serve(gctx, metricsAddr, api.New(logger))
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("familytree: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
