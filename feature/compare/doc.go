// Package compare implements the log comparison pipeline: parse two
// application logs of timed-query records, reconcile them by query text,
// and report which queries are common to both runs and which are unique
// to each, with aggregate timing statistics.
//
// The pipeline is strictly linear: validate both paths, load and sort each
// file, reconcile the two sequences (core/reconcile), render the report
// table to console and report file, and write one diff file per side.
// Any validation failure aborts before an artifact is written.
//
// Two deployed line shapes exist, differing only in a fixed-width
// timestamp prefix; a single Parser handles both via Config.Timestamps,
// keeping the timestamp as optional metadata on each record.
package compare
