// Package motif finds a fixed-length motif shared, up to a bounded number of
// mismatches, by every sequence of a set.
//
// The search is a Gibbs-style sampler: one candidate window per sequence is
// kept, a random sequence is picked each iteration and its candidate is
// resampled with weights that favour windows agreeing column-wise with the
// other candidates and penalise windows that are common under a leave-one-out
// background model. Once candidate churn settles the per-column majority
// (the consensus) is tested against the mutation bound; stagnant chains are
// restarted from a new seed window.
//
// The package is domain-only: it never touches files, flags or writers.
package motif
