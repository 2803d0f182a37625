package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frfinder/config"
	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/finder"
	"github.com/katalvlaran/frfinder/loader"
	"github.com/katalvlaran/frfinder/report"
	"github.com/katalvlaran/frfinder/store"
)

// Output file suffixes appended to --out.
const (
	suffixReport    = ".frs.tsv"
	suffixParams    = ".params.tsv"
	suffixPathFRs   = ".pathfrs.tsv"
	suffixHistogram = ".hist.tsv"
)

type searchFlags struct {
	configPath string
	graph      string
	labels     string
	strict     bool

	alpha     float64
	kappa     int
	minSup    int
	maxSup    int
	minSize   int
	minLen    int
	caseCtrl  bool
	useRC     bool
	workers   int
	maxRounds int

	out        string
	metricsOut string
	checkpoint string
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	c := &cobra.Command{
		Use:   "search",
		Short: "Search a graph for frequented regions",
		Long: `Search loads a graph document, runs the frequented region search and
writes the report. Flags override the values of --config.

With --out PREFIX the files PREFIX.frs.tsv (report), PREFIX.params.tsv,
PREFIX.pathfrs.tsv (path x region matrix) and PREFIX.hist.tsv are written;
without it the report goes to stdout.

Examples:
  frfinder search --graph hla.yaml --alpha 0.8 --kappa 10
  frfinder search --config run.yaml --minsup 5 --out out/hla --checkpoint out/hla.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, f)
		},
	}

	fl := c.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.graph, "graph", "g", "", "graph document (YAML or JSON)")
	fl.StringVar(&f.labels, "labels", "", "path labels file (name<TAB>label)")
	fl.BoolVar(&f.strict, "strict", false, "reject paths through unknown nodes")
	fl.Float64VarP(&f.alpha, "alpha", "a", 0, "penetrance: minimum fraction of region nodes a subpath covers")
	fl.IntVarP(&f.kappa, "kappa", "k", 0, "maximum insertion length in bases")
	fl.IntVar(&f.minSup, "minsup", 1, "minimum support of a reported region")
	fl.IntVar(&f.maxSup, "maxsup", 0, "maximum support of a reported region (0: unbounded)")
	fl.IntVar(&f.minSize, "minsize", 1, "minimum number of nodes of a reported region")
	fl.IntVar(&f.minLen, "minlen", 1, "minimum average subpath length of a reported region")
	fl.BoolVar(&f.caseCtrl, "casectrl", false, "prefer merges with case/control imbalance")
	fl.BoolVar(&f.useRC, "rc", false, "reverse-complement flag (recorded, no effect)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "pair evaluation goroutines (0: GOMAXPROCS)")
	fl.IntVar(&f.maxRounds, "max-rounds", 0, "stop after this many rounds (0: unlimited)")
	fl.StringVarP(&f.out, "out", "o", "", "output file prefix")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	fl.StringVar(&f.checkpoint, "checkpoint", "", "BadgerDB directory checkpointing accepted regions")

	return c
}

// resolveConfig loads --config and applies the flags that were set.
func resolveConfig(cmd *cobra.Command, f *searchFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	s := &cfg.Search
	if fl.Changed("alpha") {
		s.Alpha = &f.alpha
	}
	if fl.Changed("kappa") {
		s.Kappa = &f.kappa
	}
	if fl.Changed("minsup") {
		s.MinSup = f.minSup
	}
	if fl.Changed("maxsup") && f.maxSup > 0 {
		s.MaxSup = f.maxSup
	}
	if fl.Changed("minsize") {
		s.MinSize = f.minSize
	}
	if fl.Changed("minlen") {
		s.MinLen = f.minLen
	}
	if fl.Changed("casectrl") {
		s.CaseCtrl = f.caseCtrl
	}
	if fl.Changed("rc") {
		s.UseRC = f.useRC
	}
	if fl.Changed("workers") {
		s.Workers = f.workers
	}
	if fl.Changed("max-rounds") {
		s.MaxRounds = f.maxRounds
	}
	if fl.Changed("graph") {
		cfg.Graph.Path = f.graph
	}
	if fl.Changed("labels") {
		cfg.Graph.Labels = f.labels
	}
	if fl.Changed("strict") {
		cfg.Graph.StrictPaths = f.strict
	}
	if fl.Changed("out") {
		cfg.Output.Prefix = f.out
	}
	if fl.Changed("metrics-out") {
		cfg.Output.Metrics = f.metricsOut
	}
	if fl.Changed("checkpoint") {
		cfg.Output.Checkpoint = f.checkpoint
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Graph.Path == "" {
		return config.Config{}, errors.New("no graph: use --graph or graph.path")
	}

	return cfg, nil
}

// loadGraph loads the graph document and applies the labels file.
func loadGraph(gc config.Graph, logger *slog.Logger) (*core.Graph, error) {
	var opts []core.GraphOption
	if gc.StrictPaths {
		opts = append(opts, core.WithStrictPaths())
	}
	g, err := loader.LoadFile(gc.Path, opts...)
	if err != nil {
		return nil, err
	}
	if gc.Labels != "" {
		labels, err := loader.ReadLabelsFile(gc.Labels)
		if err != nil {
			return nil, err
		}
		applied := g.ApplyLabels(labels)
		if applied < len(labels) {
			logger.Warn("labels for unknown paths ignored",
				slog.Int("labels", len(labels)),
				slog.Int("applied", applied))
		}
	}
	logger.Info("graph loaded",
		slog.String("path", gc.Path),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("paths", g.PathCount()))

	return g, nil
}

func runSearch(cmd *cobra.Command, a *app, f *searchFlags) (err error) {
	ctx := cmd.Context()
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := a.logger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	g, err := loadGraph(cfg.Graph, logger)
	if err != nil {
		return err
	}

	info := report.NewRunInfo(cfg.Graph.Path, params)
	totals := g.LabelCounts()
	delete(totals, "")
	opts := append(cfg.Options(), finder.WithLogger(logger.With(slog.String("run", info.RunID))))

	if cfg.Output.Checkpoint != "" {
		var st *store.Store
		if st, err = store.Open(store.Config{Path: cfg.Output.Checkpoint, SyncWrites: true, Logger: logger}); err != nil {
			return err
		}
		defer closeInto(&err, st)
		if err = st.Begin(ctx, info, totals); err != nil {
			return err
		}
		opts = append(opts, finder.WithOnAccept(st.Checkpoint(ctx, info.RunID, totals)))
	}

	fnd, err := finder.New(g, params, opts...)
	if err != nil {
		return err
	}
	res, err := fnd.Find(ctx)
	if err != nil {
		return err
	}

	if err := writeOutputs(cmd.OutOrStdout(), cfg.Output.Prefix, info, g, res); err != nil {
		return err
	}
	if cfg.Output.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Output.Metrics, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	stderr := cmd.ErrOrStderr()
	if res.Empty() {
		fmt.Fprintln(stderr, "warning: no frequented regions found")
	}
	fmt.Fprintf(stderr, "run %s: %d regions in %d rounds (%s)\n",
		info.RunID, len(res.Regions), res.Rounds, res.Termination)

	return nil
}

func writeOutputs(stdout io.Writer, prefix string, info report.RunInfo, g *core.Graph, res *finder.Result) error {
	if prefix == "" {
		return report.Write(stdout, res.Regions, res.LabelTotals)
	}
	files := []struct {
		suffix string
		write  func(io.Writer) error
	}{
		{suffixReport, func(w io.Writer) error { return report.Write(w, res.Regions, res.LabelTotals) }},
		{suffixParams, func(w io.Writer) error { return report.WriteParams(w, info) }},
		{suffixPathFRs, func(w io.Writer) error { return report.WritePathMatrix(w, g.Paths(), res.Regions) }},
		{suffixHistogram, func(w io.Writer) error { return report.WriteHistogram(w, res.Regions) }},
	}
	for _, file := range files {
		if err := writeFile(prefix+file.suffix, file.write); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(&err, fh)
	bw := bufio.NewWriter(fh)
	if err := write(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return bw.Flush()
}

// closeInto closes c and stores its error in *err unless *err is already set.
func closeInto(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
