// SPDX-License-Identifier: MIT
// Package: frfinder/synth
//
// pangenome.go: backbone-and-bubbles pangenome generator.
//
// Canonical model:
//   - bubbles+1 anchor nodes A₀…A_b shared by every haplotype.
//   - Between Aᵢ and Aᵢ₊₁ a bubble of `alleles` alternative nodes.
//   - A haplotype walks A₀ → allele → A₁ → … → A_b, choosing one allele per
//     bubble uniformly (or allele 0 with the case bias), or skipping the
//     bubble with the deletion rate.
//
// Determinism:
//   - Node IDs are assigned 1..N in construction order.
//   - Draw order is fixed: all sequences first, then haplotypes in order.

package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/frfinder/core"
)

const methodPangenome = "Pangenome"

// Pangenome builds a labelled bubble-chain pangenome with the given number of
// bubbles and haplotype paths.
//
// Errors:
//   - ErrBadParameter: bubbles < 1 or haplotypes < 1.
//   - ErrNeedRandSource: no WithSeed/WithRand.
//
// Complexity: O(bubbles·(alleles + haplotypes)).
func Pangenome(bubbles, haplotypes int, opts ...Option) (*core.Graph, error) {
	if bubbles < 1 {
		return nil, fmt.Errorf("%s: bubbles=%d: %w", methodPangenome, bubbles, ErrBadParameter)
	}
	if haplotypes < 1 {
		return nil, fmt.Errorf("%s: haplotypes=%d: %w", methodPangenome, haplotypes, ErrBadParameter)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPangenome, ErrNeedRandSource)
	}

	g := core.NewGraph(core.WithStrictPaths())
	anchors := make([]uint64, bubbles+1)
	alleles := make([][]uint64, bubbles)
	next := uint64(1)
	add := func() (uint64, error) {
		id := next
		next++
		if err := g.AddNode(id, cfg.sequence()); err != nil {
			return 0, fmt.Errorf("%s: %w", methodPangenome, err)
		}

		return id, nil
	}

	var err error
	for b := 0; b <= bubbles; b++ {
		if anchors[b], err = add(); err != nil {
			return nil, err
		}
		if b == bubbles {
			break
		}
		alleles[b] = make([]uint64, cfg.alleles)
		for k := range alleles[b] {
			if alleles[b][k], err = add(); err != nil {
				return nil, err
			}
		}
	}
	for b := 0; b < bubbles; b++ {
		for _, al := range alleles[b] {
			_ = g.AddEdge(anchors[b], al)
			_ = g.AddEdge(al, anchors[b+1])
		}
		if cfg.deletion > 0 {
			_ = g.AddEdge(anchors[b], anchors[b+1])
		}
	}

	cases := int(math.Round(cfg.caseFraction * float64(haplotypes)))
	width := len(fmt.Sprint(haplotypes))
	for h := 0; h < haplotypes; h++ {
		isCase := h < cases
		walk := make([]uint64, 0, 2*bubbles+1)
		walk = append(walk, anchors[0])
		for b := 0; b < bubbles; b++ {
			if cfg.deletion > 0 && cfg.rng.Float64() < cfg.deletion {
				walk = append(walk, anchors[b+1])
				continue
			}
			pick := cfg.rng.Intn(cfg.alleles)
			if isCase && cfg.biased && cfg.rng.Float64() < cfg.caseBias {
				pick = 0
			}
			walk = append(walk, alleles[b][pick], anchors[b+1])
		}

		label := ""
		if cfg.labelled {
			label = "ctrl"
			if isCase {
				label = "case"
			}
		}
		name := fmt.Sprintf("%s%0*d", cfg.pathPrefix, width, h+1)
		if err := g.AddPath(name, label, walk); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPangenome, err)
		}
	}

	return g, nil
}
