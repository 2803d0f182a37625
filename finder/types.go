// Package finder defines the configuration, results and sentinel errors of
// the frequented region search.
//
// The search (Finder.Find) seeds one singleton region per graph node and then
// runs greedy agglomeration rounds: each round merges the best pair of live
// regions, retires both parents, and keeps the merged region when it passes
// the acceptance filters.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if New receives a nil *core.Graph.
//	– ErrInvalidParams if Params fail validation (alpha, kappa, bounds).
//	– ErrBadWorkers    if WithWorkers receives n < 1 (panic).
//	– ErrBadMaxRounds  if WithMaxRounds receives n < 0 (panic).
package finder

import (
	"errors"
	"time"

	"github.com/katalvlaran/frfinder/region"
)

// Sentinel errors returned by the finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("finder: graph is nil")

	// ErrInvalidParams indicates Params rejected before any seeding work.
	ErrInvalidParams = errors.New("finder: invalid parameters")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("finder: workers must be positive")

	// ErrBadMaxRounds indicates a negative round limit.
	ErrBadMaxRounds = errors.New("finder: max rounds must be non-negative")
)

// Path labels recognised by the case/control priority.
const (
	CaseLabel = "case"
	CtrlLabel = "ctrl"
)

// Termination tells why a search stopped.
type Termination int

const (
	// TerminationExhausted: no live pair merges into a region with positive support.
	TerminationExhausted Termination = iota
	// TerminationRoundLimit: the WithMaxRounds limit was reached.
	TerminationRoundLimit
)

// String returns the lower-case name of t.
func (t Termination) String() string {
	switch t {
	case TerminationExhausted:
		return "exhausted"
	case TerminationRoundLimit:
		return "round-limit"
	default:
		return "unknown"
	}
}

// Accepted is handed to the WithOnAccept hook for every region that passes
// the acceptance filters.
type Accepted struct {
	Ordinal int // 1-based acceptance order
	Round   int
	Region  *region.Region
}

// RoundStats summarises one committed round for the WithOnRound hook.
type RoundStats struct {
	Round      int
	Live       int // live regions after the commit
	Candidates int // pairs evaluated in this round
	Queued     int // heap entries after the commit, stale ones included
	Merged     *region.Region
	Accepted   bool
	Elapsed    time.Duration
}

// Result is the outcome of a completed search.
type Result struct {
	// Regions are the accepted regions sorted ascending by region.Compare.
	Regions []*region.Region
	// Rounds is the number of committed merges.
	Rounds int
	// Seeds is the number of singleton regions with positive support.
	Seeds       int
	Termination Termination
	// Labels are the distinct non-empty path labels of the graph, sorted.
	Labels []string
	// LabelTotals maps each label to its number of paths.
	LabelTotals map[string]int
}

// Empty reports whether the search accepted no region. An empty result is a
// legitimate outcome, not an error.
func (r *Result) Empty() bool { return len(r.Regions) == 0 }
