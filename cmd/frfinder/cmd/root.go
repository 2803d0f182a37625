package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frfinder/config"
	"github.com/katalvlaran/frfinder/logging"
)

// app holds the persistent flags and the resources built from them.
type app struct {
	logLevel  string
	logFormat string
	trace     bool

	shutdown func(context.Context) error
}

// NewRootCmd builds the frfinder command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "frfinder",
		Short: "Discover frequented regions in pangenome graphs",
		Long: `frfinder searches a pangenome graph for frequented regions: sets of
nodes that many haplotype paths traverse together, allowing bounded
insertions (kappa) and partial coverage (alpha).

Commands:
  search   run a search and write the report files
  report   reprint a report file or a checkpointed run
  inspect  print graph contents without searching`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.trace {
				return nil
			}
			shutdown, err := setupTracing(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.shutdown = shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.Background())
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default info)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json (default text)")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "write OpenTelemetry spans to stderr")

	root.AddCommand(newSearchCmd(a), newReportCmd(a), newInspectCmd(a))

	return root
}

// Execute runs the root command; interrupts cancel between rounds.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "frfinder:", err)
		stop()
		os.Exit(1)
	}
}

// logger builds the logger from the config section, overridden by flags.
func (a *app) logger(cmd *cobra.Command, lc config.Logging) (*slog.Logger, error) {
	if a.logLevel != "" {
		lc.Level = a.logLevel
	}
	if a.logFormat != "" {
		lc.Format = a.logFormat
	}
	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	switch lc.Format {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", lc.Format)
	}

	return logging.New(logging.Config{
		Level:   level,
		JSON:    lc.Format == "json",
		Writer:  cmd.ErrOrStderr(),
		Service: "frfinder",
	}), nil
}
