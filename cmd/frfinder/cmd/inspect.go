package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frfinder/config"
	"github.com/katalvlaran/frfinder/core"
)

// Sections printed by inspect, in output order.
var inspectSections = []string{"nodes", "paths", "node-paths", "sequences", "labels"}

func newInspectCmd(a *app) *cobra.Command {
	var (
		gc       config.Graph
		sections []string
	)
	c := &cobra.Command{
		Use:   "inspect",
		Short: "Print graph contents without searching",
		Long: `Inspect loads a graph document and prints, as tab-separated sections:

  nodes       node ID, length, sequence
  paths       path name, label, node IDs
  node-paths  node ID, names of the paths through it
  sequences   path name, concatenated sequence
  labels      label, number of paths

Example:
  frfinder inspect --graph hla.yaml --labels hla.labels.tsv --section labels`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(cmd, config.Logging{})
			if err != nil {
				return err
			}
			if gc.Path == "" {
				return errors.New("inspect: --graph is required")
			}
			g, err := loadGraph(gc, logger)
			if err != nil {
				return err
			}
			want := make(map[string]bool)
			for _, s := range sections {
				if !slices.Contains(inspectSections, s) {
					return fmt.Errorf("inspect: unknown section %q (have %s)", s, strings.Join(inspectSections, ", "))
				}
				want[s] = true
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()
			for _, s := range inspectSections {
				if len(want) > 0 && !want[s] {
					continue
				}
				fmt.Fprintf(out, "# %s\n", s)
				if err := printSection(out, g, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVarP(&gc.Path, "graph", "g", "", "graph document (YAML or JSON)")
	c.Flags().StringVar(&gc.Labels, "labels", "", "path labels file (name<TAB>label)")
	c.Flags().StringSliceVar(&sections, "section", nil, "sections to print (default all)")

	return c
}

func printSection(w io.Writer, g *core.Graph, section string) error {
	switch section {
	case "nodes":
		for _, n := range g.Nodes() {
			fmt.Fprintf(w, "%d\t%d\t%s\n", n.ID, n.Len(), n.Sequence)
		}
	case "paths":
		for _, p := range g.Paths() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Label, joinIDs(p.Nodes))
		}
	case "node-paths":
		for _, id := range g.NodeIDs() {
			var names []string
			for _, p := range g.NodePaths(id) {
				names = append(names, p.Name)
			}
			fmt.Fprintf(w, "%d\t%s\n", id, strings.Join(names, ","))
		}
	case "sequences":
		for _, p := range g.Paths() {
			seq, err := g.PathSequence(p.Name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", p.Name, seq)
		}
	case "labels":
		counts := g.LabelCounts()
		for _, label := range g.Labels() {
			fmt.Fprintf(w, "%s\t%d\n", label, counts[label])
		}
		if n := counts[""]; n > 0 {
			fmt.Fprintf(w, "-\t%d\n", n)
		}
	}

	return nil
}

func joinIDs(ids []uint64) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", id)
	}

	return sb.String()
}
