package reconcile

// Reconcile partitions two record sequences into matched pairs and
// per-side leftovers, pairing records by query text under greedy
// left-to-right multiset matching.
//
// Each left record, in sequence order, consumes the first still-unmatched
// right record with the same query text. Duplicate query texts are paired
// occurrence by occurrence; excess occurrences on either side end up in
// that side's unique partition. UniqueLeft keeps left order, UniqueRight
// keeps right order.
func Reconcile(left, right []Record) Result {
	// FIFO queue of right indices per query text. The head of a queue is
	// always the first unmatched occurrence in right's current order, so
	// popping it is equivalent to a linear scan with removal.
	pending := make(map[string][]int, len(right))
	for i, r := range right {
		pending[r.Query] = append(pending[r.Query], i)
	}

	matched := make([]bool, len(right))
	res := Result{}

	for _, l := range left {
		queue := pending[l.Query]
		if len(queue) == 0 {
			res.UniqueLeft = append(res.UniqueLeft, l)
			continue
		}
		i := queue[0]
		pending[l.Query] = queue[1:]
		matched[i] = true
		res.CommonCount++
		res.CommonTimeLeft += l.Elapsed
		res.CommonTimeRight += right[i].Elapsed
	}

	for i, r := range right {
		if !matched[i] {
			res.UniqueRight = append(res.UniqueRight, r)
		}
	}

	return res
}

// Summarize derives per-side aggregate statistics from the two full input
// sequences and a reconciliation result over them.
func Summarize(left, right []Record, res Result) Summary {
	return Summary{
		CommonCount: res.CommonCount,
		Left: SideStats{
			Total:      len(left),
			TotalTime:  TotalElapsed(left),
			CommonTime: res.CommonTimeLeft,
			Unique:     len(res.UniqueLeft),
			UniqueTime: TotalElapsed(res.UniqueLeft),
		},
		Right: SideStats{
			Total:      len(right),
			TotalTime:  TotalElapsed(right),
			CommonTime: res.CommonTimeRight,
			Unique:     len(res.UniqueRight),
			UniqueTime: TotalElapsed(res.UniqueRight),
		},
	}
}

// TotalElapsed sums the elapsed times of a record sequence.
func TotalElapsed(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Elapsed
	}
	return total
}
