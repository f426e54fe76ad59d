package compare

import (
	"bufio"
	"fmt"
	"os"

	"logdiff/core/reconcile"
)

// WriteDiff writes records to the file at path, one per line, in the
// order given. Each line carries the timestamp (when the record has one),
// the elapsed time with three decimals, and the query text — the same
// order the fields hold on a source log line.
func WriteDiff(path string, records []reconcile.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, r := range records {
		if r.HasTimestamp {
			_, err = fmt.Fprintf(w, "%s %.3f %s\n", r.Timestamp.Format(TimestampLayout), r.Elapsed, r.Query)
		} else {
			_, err = fmt.Fprintf(w, "%.3f %s\n", r.Elapsed, r.Query)
		}
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
