// Package frfinder discovers frequented regions in pangenome graphs.
//
// A frequented region (FR) is a set of graph nodes that many haplotype
// paths traverse together. A path supports a region through a subpath that
// enters and leaves the region, covers at least alpha of its nodes and
// detours through no run of outside nodes longer than kappa bases.
//
// Packages, leaves first:
//
//	core/      Graph of sequence-carrying nodes, edges and labelled paths
//	nodeset/   immutable ordered node sets and their "[1,2,3]" form
//	region/    frequented regions: subpaths, support, ordering, merge
//	finder/    the parallel greedy agglomerative search
//	report/    tab-separated report, path matrix, params file, histogram
//	store/     BadgerDB checkpoint of accepted regions per run
//	loader/    YAML/JSON graph documents and path-label files
//	config/    YAML run configuration
//	logging/   slog logger construction
//	synth/     deterministic synthetic pangenomes for tests and benchmarks
//
// The frfinder command (cmd/frfinder) wires them together:
//
//	frfinder search --graph hla.yaml --labels hla.tsv --alpha 0.8 --kappa 10 --out out/hla
//	frfinder report out/hla.frs.tsv
//	frfinder inspect --graph hla.yaml
//
// Library use:
//
//	g, _ := loader.LoadFile("hla.yaml")
//	f, _ := finder.New(g, finder.DefaultParams(0.8, 10), finder.WithWorkers(8))
//	res, _ := f.Find(ctx)
//	_ = report.Write(os.Stdout, res.Regions, res.LabelTotals)
package frfinder
