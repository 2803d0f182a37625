// SPDX-License-Identifier: MIT
// Package: frfinder/synth
//
// options.go: functional options for the synthetic pangenome generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only flows from WithSeed/WithRand.

package synth

import "math/rand"

// Option customizes a generator by mutating config before construction.
type Option func(*config)

// WithSeed creates a seeded *rand.Rand (deterministic output).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAlleles sets the number of alternative allele nodes per bubble (≥1).
func WithAlleles(k int) Option {
	if k < 1 {
		panic("synth: WithAlleles(k<1)")
	}
	return func(c *config) {
		c.alleles = k
	}
}

// WithNodeLength sets the inclusive range of node sequence lengths.
// Panics unless 0 ≤ lo ≤ hi.
func WithNodeLength(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("synth: WithNodeLength(lo<0 or hi<lo)")
	}
	return func(c *config) {
		c.minLen, c.maxLen = lo, hi
	}
}

// WithDeletionRate sets the probability that a haplotype skips a bubble's
// alleles and jumps from anchor to anchor. Panics outside [0,1].
func WithDeletionRate(p float64) Option {
	if p < 0 || p > 1 {
		panic("synth: WithDeletionRate(p∉[0,1])")
	}
	return func(c *config) {
		c.deletion = p
	}
}

// WithCaseFraction labels the first ⌊f·haplotypes⌉ paths "case" and the rest
// "ctrl". Panics outside [0,1].
func WithCaseFraction(f float64) Option {
	if f < 0 || f > 1 {
		panic("synth: WithCaseFraction(f∉[0,1])")
	}
	return func(c *config) {
		c.caseFraction = f
		c.labelled = true
	}
}

// WithCaseBias makes case haplotypes pick allele 0 with probability p, so
// case and control support diverge. Panics outside [0,1].
func WithCaseBias(p float64) Option {
	if p < 0 || p > 1 {
		panic("synth: WithCaseBias(p∉[0,1])")
	}
	return func(c *config) {
		c.caseBias = p
		c.biased = true
	}
}

// WithUnlabelled leaves every path without a label.
func WithUnlabelled() Option {
	return func(c *config) {
		c.labelled = false
	}
}

// WithPathPrefix sets the path name prefix; empty means the default.
func WithPathPrefix(prefix string) Option {
	return func(c *config) {
		c.pathPrefix = prefix
	}
}
