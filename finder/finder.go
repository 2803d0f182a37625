// SPDX-License-Identifier: MIT
//
// File: finder.go
// Role: Search driver. Seeding → Round(1) → … → terminated.
//
// Concurrency:
//   - Each round fans pure merges out over an errgroup; they read the arena
//     and push into the locked heap.
//   - The commit (retire parents, append merged region, accept) runs on the
//     calling goroutine after the round's barrier.
//   - ctx is checked between rounds only; a started round always completes.
package finder

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/frfinder/core"
	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/region"
)

var tracer = otel.Tracer("frfinder.finder")

// Finder runs frequented region searches over one graph.
type Finder struct {
	g      *core.Graph
	params Params
	opts   Options
}

// New validates params and returns a Finder over g.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrInvalidParams: params.Validate failed.
func New(g *core.Graph, params Params, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Finder{g: g, params: params, opts: cfg}, nil
}

// Params returns the search parameters.
func (f *Finder) Params() Params { return f.params }

// Find runs one complete search.
//
// Implementation:
//   - Stage 1: Snapshot paths and sequences; seed one singleton region per
//     node and keep those with positive support.
//   - Stage 2: Round 1 evaluates every pair of seeds. Each later round
//     evaluates only the region committed by the previous round against
//     every other live region; older pairs stay queued.
//   - Stage 3: Pop the best pair with two live parents, retire both parents,
//     append the merged region and apply the acceptance filters.
//   - Stage 4: Stop when no live pair has positive merged support or the
//     round limit is reached.
//
// Behavior highlights:
//   - Deterministic: the result does not depend on the worker count.
//   - An empty result is returned without error and logged at Warn.
//
// Errors:
//   - region.ErrMissingSequence (wrapped): a path crosses a node without a
//     sequence; the whole search aborts.
//   - Any error returned by the OnAccept hook.
//   - ctx.Err() (wrapped) when ctx is done between rounds.
//
// Complexity:
//   - Time O(N²·M) merges in round 1 plus O(N·M) per later round, where N is
//     the seed count and M the cost of one merge; heap operations add
//     O(N² log N) overall.
//   - Space O(N²) queued pairs in the worst case.
func (f *Finder) Find(ctx context.Context) (*Result, error) {
	ctx, span := tracer.Start(ctx, "finder.Find",
		trace.WithAttributes(
			attribute.Float64("finder.alpha", f.params.Alpha),
			attribute.Int("finder.kappa", f.params.Kappa),
			attribute.Int("finder.workers", f.opts.Workers),
			attribute.Bool("finder.case_ctrl", f.params.CaseCtrl),
		),
	)
	defer span.End()

	r := &runner{
		g:      f.g,
		params: f.params,
		opts:   f.opts,
		queue:  newPairQueue(f.params.CaseCtrl),
		keys:   make(map[string]struct{}),
	}
	res, err := r.run(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		searchesTotal.WithLabelValues("error").Inc()

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("finder.rounds", res.Rounds),
		attribute.Int("finder.accepted", len(res.Regions)),
	)
	span.SetStatus(codes.Ok, "")
	searchesTotal.WithLabelValues(res.Termination.String()).Inc()

	return res, nil
}

// runner holds the mutable state of one search.
type runner struct {
	g      *core.Graph
	params Params
	opts   Options

	arena    []*region.Region // every region ever live, append-only
	retired  []bool           // retired[i] marks arena[i] consumed by a merge
	live     int
	queue    *pairQueue
	accepted []*region.Region
	keys     map[string]struct{} // node-set strings of accepted regions
}

// task evaluates anchor against each partner.
type task struct {
	anchor   int
	partners []int
}

func (r *runner) run(ctx context.Context) (*Result, error) {
	start := time.Now()
	log := r.opts.Logger

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	if err := r.seed(ctx); err != nil {
		return nil, fmt.Errorf("Find: seeding: %w", err)
	}
	seeds := len(r.arena)
	log.Info("seeded", "nodes", r.g.NodeCount(), "paths", r.g.PathCount(), "seeds", seeds)

	termination := TerminationExhausted
	rounds := 0
	tasks := r.initialTasks()
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Find: before round %d: %w", round, err)
		}
		if r.opts.MaxRounds > 0 && round > r.opts.MaxRounds {
			termination = TerminationRoundLimit
			break
		}
		committed, err := r.round(ctx, round, tasks)
		if err != nil {
			return nil, fmt.Errorf("Find: round %d: %w", round, err)
		}
		if !committed {
			break
		}
		rounds = round
		tasks = r.followupTasks()
	}

	slices.SortFunc(r.accepted, region.Compare)
	res := &Result{
		Regions:     r.accepted,
		Rounds:      rounds,
		Seeds:       seeds,
		Termination: termination,
		Labels:      r.g.Labels(),
		LabelTotals: r.g.LabelCounts(),
	}
	delete(res.LabelTotals, "")

	log.Info("search finished",
		"rounds", rounds,
		"accepted", len(res.Regions),
		"termination", termination.String(),
		"elapsed", time.Since(start),
	)
	if res.Empty() {
		log.Warn("no frequented regions accepted",
			"alpha", r.params.Alpha, "kappa", r.params.Kappa,
			"minSup", r.params.MinSup, "minSize", r.params.MinSize, "minLen", r.params.MinLen,
		)
	}

	return res, nil
}

// seed builds one singleton region per node sharing a single path
// collection and sequence table, and keeps those with positive support in
// node ID order.
func (r *runner) seed(ctx context.Context) error {
	_, span := tracer.Start(ctx, "finder.seed")
	defer span.End()

	ids := r.g.NodeIDs()
	base, err := region.New(nodeset.Empty(), r.g.Paths(), region.NewSequences(r.g.Sequences()),
		r.params.Alpha, r.params.Kappa)
	if err != nil {
		return err
	}

	seeds := make([]*region.Region, len(ids))
	g := new(errgroup.Group)
	g.SetLimit(r.opts.Workers)
	for idx, id := range ids {
		g.Go(func() error {
			s, err := base.Derive(nodeset.New(id))
			if err != nil {
				return fmt.Errorf("node %d: %w", id, err)
			}
			seeds[idx] = s

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	for _, s := range seeds {
		if s.Support() > 0 {
			r.arena = append(r.arena, s)
		}
	}
	r.retired = make([]bool, len(r.arena))
	r.live = len(r.arena)
	liveRegions.Set(float64(r.live))
	span.SetAttributes(attribute.Int("finder.seeds", r.live))

	return nil
}

// initialTasks pairs every seed with every later seed.
func (r *runner) initialTasks() []task {
	tasks := make([]task, 0, len(r.arena))
	all := make([]int, len(r.arena))
	for i := range all {
		all[i] = i
	}
	for i := range all {
		if i+1 < len(all) {
			tasks = append(tasks, task{anchor: i, partners: all[i+1:]})
		}
	}

	return tasks
}

// followupTasks pairs the newest region with every other live region, split
// into one chunk per worker.
func (r *runner) followupTasks() []task {
	anchor := len(r.arena) - 1
	partners := make([]int, 0, r.live)
	for idx := 0; idx < anchor; idx++ {
		if !r.retired[idx] {
			partners = append(partners, idx)
		}
	}
	if len(partners) == 0 {
		return nil
	}

	size := (len(partners) + r.opts.Workers - 1) / r.opts.Workers
	tasks := make([]task, 0, r.opts.Workers)
	for lo := 0; lo < len(partners); lo += size {
		hi := min(lo+size, len(partners))
		tasks = append(tasks, task{anchor: anchor, partners: partners[lo:hi]})
	}

	return tasks
}

// round evaluates tasks, then commits the best live pair. It reports false
// when no live pair remains.
func (r *runner) round(ctx context.Context, k int, tasks []task) (bool, error) {
	began := time.Now()
	ctx, span := tracer.Start(ctx, "finder.round",
		trace.WithAttributes(
			attribute.Int("finder.round", k),
			attribute.Int("finder.live", r.live),
		),
	)
	defer span.End()

	evaluated, err := r.evaluate(ctx, tasks)
	span.SetAttributes(attribute.Int("finder.candidates", evaluated))
	candidatesTotal.Add(float64(evaluated))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	best := r.queue.popLive(r.retired)
	if best == nil {
		return false, nil
	}
	accepted, err := r.commit(k, best)
	if err != nil {
		return false, err
	}

	elapsed := time.Since(began)
	roundsTotal.Inc()
	roundDuration.Observe(elapsed.Seconds())
	liveRegions.Set(float64(r.live))

	m := best.merged
	r.opts.Logger.Debug("round",
		"round", k,
		"nodes", m.Nodes().String(),
		"support", m.Support(),
		"avgLen", m.AvgLength(),
		"accepted", accepted,
		"live", r.live,
	)
	if r.opts.OnRound != nil {
		r.opts.OnRound(RoundStats{
			Round:      k,
			Live:       r.live,
			Candidates: evaluated,
			Queued:     r.queue.len(),
			Merged:     m,
			Accepted:   accepted,
			Elapsed:    elapsed,
		})
	}

	return true, nil
}

// evaluate merges every candidate pair of tasks concurrently and queues the
// ones with positive support. The arena is read-only until it returns.
func (r *runner) evaluate(ctx context.Context, tasks []task) (int, error) {
	g, gCtx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.SetLimit(r.opts.Workers)

	var evaluated atomic.Int64
	for _, t := range tasks {
		g.Go(func() error {
			for _, k := range t.partners {
				if gCtx.Err() != nil {
					return nil
				}
				i, j := min(t.anchor, k), max(t.anchor, k)
				a, b := r.arena[i], r.arena[j]
				merged, err := region.Merge(a, b, r.params.Alpha, r.params.Kappa)
				if err != nil {
					return err
				}
				evaluated.Add(1)
				if merged.Support() == 0 {
					continue
				}
				r.queue.push(&pair{
					i: i, j: j,
					iNodes: a.Nodes(), jNodes: b.Nodes(),
					merged: merged,
					imbal:  imbalance(merged),
				})
			}

			return nil
		})
	}
	err := g.Wait()

	return int(evaluated.Load()), err
}

// commit retires p's parents, appends the merged region and applies the
// acceptance filters. It reports whether the region was accepted.
func (r *runner) commit(k int, p *pair) (bool, error) {
	r.retired[p.i] = true
	r.retired[p.j] = true
	r.arena = append(r.arena, p.merged)
	r.retired = append(r.retired, false)
	r.live--

	m := p.merged
	if !r.params.accepts(m.Support(), m.AvgLength(), m.Size()) {
		return false, nil
	}
	key := m.Nodes().String()
	if _, dup := r.keys[key]; dup {
		return false, nil
	}
	r.keys[key] = struct{}{}
	r.accepted = append(r.accepted, m)
	acceptedTotal.Inc()

	if r.opts.OnAccept != nil {
		if err := r.opts.OnAccept(Accepted{Ordinal: len(r.accepted), Round: k, Region: m}); err != nil {
			return true, fmt.Errorf("accept hook: %w", err)
		}
	}

	return true, nil
}

// imbalance returns |case − ctrl| subpath support of r.
func imbalance(r *region.Region) int {
	d := r.LabelCount(CaseLabel) - r.LabelCount(CtrlLabel)
	if d < 0 {
		return -d
	}

	return d
}
