package compare

import (
	"fmt"
	"io"

	"logdiff/core/reconcile"
)

// RenderReport writes the comparison table for two inputs: a header row
// and one row per file with total, common and unique counts and elapsed
// times. The name column adapts to the longer of the two file names; all
// times are printed with three decimals.
func RenderReport(w io.Writer, leftName, rightName string, sum reconcile.Summary) error {
	width := len("file")
	if len(leftName) > width {
		width = len(leftName)
	}
	if len(rightName) > width {
		width = len(rightName)
	}

	_, err := fmt.Fprintf(w, "%-*s %7s %12s %7s %12s %7s %12s\n",
		width, "file", "total", "total-time", "common", "common-time", "unique", "unique-time")
	if err != nil {
		return err
	}

	row := func(name string, s reconcile.SideStats) error {
		_, err := fmt.Fprintf(w, "%-*s %7d %12.3f %7d %12.3f %7d %12.3f\n",
			width, name, s.Total, s.TotalTime, sum.CommonCount, s.CommonTime, s.Unique, s.UniqueTime)
		return err
	}

	if err := row(leftName, sum.Left); err != nil {
		return err
	}
	return row(rightName, sum.Right)
}
