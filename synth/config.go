// SPDX-License-Identifier: MIT
// Package: frfinder/synth
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng          = nil   (stochastic generators require WithSeed/WithRand)
//   • alleles      = 2
//   • node length  = [1, 8]
//   • deletion     = 0
//   • labelled     = true, caseFraction = 0.5
//   • pathPrefix   = "hap"

package synth

import "math/rand"

const (
	defaultAlleles      = 2
	defaultMinLen       = 1
	defaultMaxLen       = 8
	defaultCaseFraction = 0.5
	defaultPathPrefix   = "hap"
	alphabet            = "ACGT"
)

// config aggregates all generator knobs. Passed by value.
type config struct {
	rng          *rand.Rand
	alleles      int
	minLen       int
	maxLen       int
	deletion     float64
	labelled     bool
	caseFraction float64
	biased       bool
	caseBias     float64
	pathPrefix   string
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		alleles:      defaultAlleles,
		minLen:       defaultMinLen,
		maxLen:       defaultMaxLen,
		labelled:     true,
		caseFraction: defaultCaseFraction,
		pathPrefix:   defaultPathPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pathPrefix == "" {
		cfg.pathPrefix = defaultPathPrefix
	}

	return cfg
}

// sequence draws a random sequence with length in [minLen, maxLen].
func (c config) sequence() string {
	n := c.minLen
	if c.maxLen > c.minLen {
		n += c.rng.Intn(c.maxLen - c.minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[c.rng.Intn(len(alphabet))]
	}

	return string(b)
}
