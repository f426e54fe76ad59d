package compare

import (
	"strconv"
	"strings"
	"time"

	"logdiff/core/reconcile"
)

// TimestampLayout is the fixed-width timestamp prefix carried by log lines
// when the deployment's format includes one (e.g. "2017-03-01 10:15:02,123").
const TimestampLayout = "2006-01-02 15:04:05,000"

// timestampWidth is the byte length of a TimestampLayout prefix.
const timestampWidth = len(TimestampLayout)

// Match is the successful outcome of parsing one log line.
type Match struct {
	// Query is the query text, everything after the elapsed-time field.
	Query string
	// Elapsed is the execution time in seconds.
	Elapsed float64
	// Timestamp is the line's timestamp prefix, when the parser is
	// configured to expect one.
	Timestamp time.Time
	// HasTimestamp reports whether Timestamp was extracted.
	HasTimestamp bool
}

// Record converts the match into a reconciler record.
func (m Match) Record() reconcile.Record {
	return reconcile.Record{
		Query:        m.Query,
		Elapsed:      m.Elapsed,
		Timestamp:    m.Timestamp,
		HasTimestamp: m.HasTimestamp,
	}
}

// Parser extracts timed-query records from raw log lines.
//
// A matching line contains the configured marker token, then a
// whitespace-separated floating-point elapsed time in seconds, then the
// query text running to the end of the line. With Timestamps enabled the
// line must additionally start with a TimestampLayout prefix. Lines that
// do not fit the grammar are not an error; logs routinely interleave
// other output between timed-query records.
type Parser struct {
	marker     string
	timestamps bool
}

// NewParser creates a parser for the configured line grammar.
func NewParser(cfg Config) *Parser {
	return &Parser{marker: cfg.Marker, timestamps: cfg.Timestamps}
}

// ParseLine parses one log line (without trailing newline). The returned
// bool is false when the line does not match the grammar, including when
// the elapsed-time token is not a valid non-negative number, the timestamp
// prefix does not parse, or the query text is empty.
func (p *Parser) ParseLine(line string) (Match, bool) {
	var m Match

	body := line
	if p.timestamps {
		if len(body) < timestampWidth {
			return Match{}, false
		}
		ts, err := time.Parse(TimestampLayout, body[:timestampWidth])
		if err != nil {
			return Match{}, false
		}
		m.Timestamp = ts
		m.HasTimestamp = true
		body = body[timestampWidth:]
	}

	idx := strings.Index(body, p.marker)
	if idx < 0 {
		return Match{}, false
	}
	rest := strings.TrimLeft(body[idx+len(p.marker):], " \t")

	// The elapsed token runs to the next whitespace; the query is
	// everything after it, internal whitespace included.
	end := strings.IndexAny(rest, " \t")
	if end < 0 {
		return Match{}, false
	}
	elapsed, err := strconv.ParseFloat(rest[:end], 64)
	if err != nil || elapsed < 0 {
		return Match{}, false
	}

	query := strings.TrimLeft(rest[end:], " \t")
	if query == "" {
		return Match{}, false
	}

	m.Elapsed = elapsed
	m.Query = query
	return m, true
}
