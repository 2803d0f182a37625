// SPDX-License-Identifier: MIT
// Package: frfinder/synth
//
// errors.go: sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Generators never panic; validation panics are confined to the WithX
//     option constructors.

package synth

import "errors"

// ErrBadParameter indicates a generator argument outside its domain
// (e.g. bubbles < 1, haplotypes < 1).
var ErrBadParameter = errors.New("synth: parameter out of range")

// ErrNeedRandSource indicates a stochastic generator without a *rand.Rand in
// the resolved config (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("synth: rng is required")
