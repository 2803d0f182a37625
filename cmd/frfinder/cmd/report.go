package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frfinder/config"
	"github.com/katalvlaran/frfinder/loader"
	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/report"
	"github.com/katalvlaran/frfinder/store"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		graphPath  string
		checkpoint string
		runID      string
	)
	c := &cobra.Command{
		Use:   "report [FILE]",
		Short: "Reprint a report file or a checkpointed run",
		Long: `Report reads a report written by "frfinder search" and prints it again,
row for row. With --graph, node IDs absent from the graph are dropped while
reading; rows are still printed as read.

With --checkpoint DIR it lists the runs stored there, or exports one with
--run ID.

Examples:
  frfinder report out/hla.frs.tsv
  frfinder report --checkpoint out/hla.db
  frfinder report --checkpoint out/hla.db --run 6f1c...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			if checkpoint != "" {
				logger, err := a.logger(cmd, config.Logging{})
				if err != nil {
					return err
				}
				return printCheckpoint(cmd.Context(), out, store.Config{Path: checkpoint, Logger: logger}, runID)
			}
			if len(args) == 0 {
				return errors.New("report: a file or --checkpoint is required")
			}

			var table nodeset.NodeTable
			if graphPath != "" {
				g, err := loader.LoadFile(graphPath)
				if err != nil {
					return err
				}
				table = g
			}
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()
			tbl, err := report.ReadWith(fh, table)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Fprintln(out, strings.Join(tbl.Header, "\t"))
			for _, rec := range tbl.Records {
				fmt.Fprintln(out, rec.Line)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&graphPath, "graph", "g", "", "graph document used to filter node IDs")
	c.Flags().StringVar(&checkpoint, "checkpoint", "", "BadgerDB checkpoint directory")
	c.Flags().StringVar(&runID, "run", "", "run ID to export from --checkpoint")

	return c
}

// printCheckpoint exports runID from the store, or lists its runs when
// runID is empty.
func printCheckpoint(ctx context.Context, w io.Writer, cfg store.Config, runID string) (err error) {
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer closeInto(&err, st)
	if runID != "" {
		return st.Export(ctx, runID, w)
	}
	ids, err := st.Runs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}

	return nil
}
