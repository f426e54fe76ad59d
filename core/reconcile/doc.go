// Package reconcile pairs two sequences of query-execution records by
// query text and partitions them into common and unique sets.
//
// The inputs are multisets: the same query text may occur many times per
// side, each occurrence with its own elapsed time. Reconciliation treats
// occurrences as distinct poolable units — the k-th occurrence on the left
// pairs with the k-th still-unmatched occurrence on the right, and only
// the excess occurrences remain unique. Elapsed times never influence
// matching; they are accumulated per partition so callers can compare
// timing between two runs of the same workload.
//
// # Determinism
//
// Given the same two input sequences, Reconcile always produces the same
// partitions in the same order: unique-left in left order, unique-right in
// right order. Callers that want run-to-run stability sort their inputs
// before reconciling (see feature/compare's loader).
//
// # Usage
//
//	res := reconcile.Reconcile(left, right)
//	sum := reconcile.Summarize(left, right, res)
package reconcile
