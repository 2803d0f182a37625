// Package region implements the frequented region: a node set evaluated
// against a collection of haplotype paths under two filters.
//
// For every path the region takes the span between the first and the last
// position whose node belongs to the set. The span qualifies as a subpath when
//
//   - every maximal run of off-set nodes inside it (an insertion) spells at
//     most kappa bases, and
//   - the distinct set members it touches make up at least alpha of the set.
//
// Support is the number of qualifying subpaths; AvgLength is the truncated
// mean number of bases they spell. Regions are immutable: New, Derive,
// Recompute and Merge each return a fully evaluated value, and Compare ranks
// them so that larger means more interesting.
//
// Regions read back from a report (Restore) keep only their node set and
// persisted statistics.
//
// Errors:
//
//	ErrMissingSequence – a subpath node is absent from the sequence table
//	ErrRestored        – sequences are needed but the region was restored
//	ErrBadAlpha        – alpha outside [0,1]
//	ErrBadKappa        – negative kappa
package region
