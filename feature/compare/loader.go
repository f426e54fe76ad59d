package compare

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"logdiff/core/reconcile"

	"go.uber.org/zap"
)

// Loader reads a log file and produces the sorted record sequence for one
// comparison side.
type Loader struct {
	parser *Parser
	logger *zap.Logger
}

// NewLoader creates a new loader using the given parser.
func NewLoader(parser *Parser, logger *zap.Logger) *Loader {
	return &Loader{parser: parser, logger: logger}
}

// Load reads the file at path, keeps every line matching the timed-query
// grammar, and returns the records sorted by query text. The sort is
// stable, so records sharing a query text keep their file order.
func (l *Loader) Load(path string) ([]reconcile.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var records []reconcile.Record
	lines := 0

	scanner := bufio.NewScanner(f)
	// Query text can run long; the default scanner limit is too small.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
		if m, ok := l.parser.ParseLine(scanner.Text()); ok {
			records = append(records, m.Record())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Query < records[j].Query
	})

	l.logger.Debug("Loaded records",
		zap.String("file", path),
		zap.Int("lines", lines),
		zap.Int("records", len(records)),
	)

	return records, nil
}
