// Package synth generates deterministic synthetic pangenome graphs for tests,
// benchmarks and demos of the frequented region search.
//
// The only topology is a chain of bubbles: shared anchor nodes separated by
// groups of alternative allele nodes, with one haplotype path per sample.
// Options follow the functional-options style:
//
//   - WithSeed / WithRand:   required RNG (reproducible with WithSeed).
//   - WithAlleles(k):        alternatives per bubble.
//   - WithNodeLength(lo,hi): sequence length range.
//   - WithDeletionRate(p):   chance to skip a bubble.
//   - WithCaseFraction(f), WithCaseBias(p), WithUnlabelled(): path labels.
//   - WithPathPrefix(s):     path names s1, s2, … (zero padded).
//
// Option constructors panic on meaningless values; Pangenome returns
// ErrBadParameter or ErrNeedRandSource instead of panicking.
package synth
