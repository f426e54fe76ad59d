package reconcile

import "time"

// Record represents a single parsed query-execution event.
// Records are value objects and are never mutated after construction.
type Record struct {
	// Query is the opaque query text used as the matching key.
	// Never empty for a successfully parsed record.
	Query string

	// Elapsed is the execution time in seconds.
	Elapsed float64

	// Timestamp is the log-line timestamp, when the deployment's line
	// format carries one. Only used when re-rendering diff lines.
	Timestamp time.Time

	// HasTimestamp reports whether Timestamp was present on the source line.
	HasTimestamp bool
}

// Result holds the outcome of reconciling two record sequences.
// It is recomputed fresh per comparison and never persisted.
type Result struct {
	// CommonCount is the number of matched record pairs. It is the same
	// for both sides by construction.
	CommonCount int

	// CommonTimeLeft is the summed elapsed time of the matched records
	// taken from the left sequence.
	CommonTimeLeft float64

	// CommonTimeRight is the summed elapsed time of the matched records
	// taken from the right sequence. Matching is by query text only, so
	// the two common times legitimately differ.
	CommonTimeRight float64

	// UniqueLeft contains the left records with no match on the right,
	// in the order they held in the left sequence.
	UniqueLeft []Record

	// UniqueRight contains the right records with no match on the left,
	// in the order they held in the right sequence.
	UniqueRight []Record
}

// SideStats aggregates count and elapsed-time totals for one input side.
type SideStats struct {
	// Total counts every record loaded from the side.
	Total int
	// TotalTime is the summed elapsed time of every record on the side.
	TotalTime float64
	// CommonTime is the summed elapsed time of the side's matched records.
	CommonTime float64
	// Unique counts the side's unmatched records.
	Unique int
	// UniqueTime is the summed elapsed time of the side's unmatched records.
	UniqueTime float64
}

// Summary provides per-side aggregate statistics for a reconciliation.
type Summary struct {
	// CommonCount is the number of matched pairs, shared by both sides.
	CommonCount int
	// Left holds the aggregates for the left input.
	Left SideStats
	// Right holds the aggregates for the right input.
	Right SideStats
}
