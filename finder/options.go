package finder

import (
	"log/slog"
	"runtime"
)

// Options configures the search machinery. Params carry the search
// semantics; Options only change how it runs and what it reports.
//
// Logger     – structured logger; default discards.
// Workers    – goroutines evaluating candidate pairs; default GOMAXPROCS.
// MaxRounds  – stop after this many committed rounds; 0 means unlimited.
// OnAccept   – called for every accepted region; an error aborts the search.
// OnRound    – called after every committed round.
type Options struct {
	Logger    *slog.Logger
	Workers   int
	MaxRounds int
	OnAccept  func(Accepted) error
	OnRound   func(RoundStats)
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger. A nil logger keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of pair-evaluation goroutines.
// Panics with ErrBadWorkers when n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithMaxRounds caps the number of committed rounds; 0 removes the cap.
// Panics with ErrBadMaxRounds when n < 0.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxRounds.Error())
		}
		o.MaxRounds = n
	}
}

// WithOnAccept registers a hook run for each accepted region, in acceptance
// order, on the committing goroutine.
func WithOnAccept(fn func(Accepted) error) Option {
	return func(o *Options) {
		o.OnAccept = fn
	}
}

// WithOnRound registers a hook run after each committed round.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
