package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	p := NewParser(Config{Marker: "timed-query"})

	tests := []struct {
		name        string
		line        string
		wantMatch   bool
		wantElapsed float64
		wantQuery   string
	}{
		{
			name:        "plain record",
			line:        "DEBUG timed-query 0.042 SELECT * FROM users",
			wantMatch:   true,
			wantElapsed: 0.042,
			wantQuery:   "SELECT * FROM users",
		},
		{
			name:        "query keeps internal whitespace",
			line:        "timed-query 1.5 SELECT a,  b   FROM t WHERE x = ?",
			wantMatch:   true,
			wantElapsed: 1.5,
			wantQuery:   "SELECT a,  b   FROM t WHERE x = ?",
		},
		{
			name:        "tabs between fields",
			line:        "INFO timed-query\t0.001\tUPDATE t SET v = 1",
			wantMatch:   true,
			wantElapsed: 0.001,
			wantQuery:   "UPDATE t SET v = 1",
		},
		{
			name: "no marker",
			line: "DEBUG connection pool exhausted",
		},
		{
			name: "elapsed not a number",
			line: "timed-query fast SELECT 1",
		},
		{
			name: "negative elapsed",
			line: "timed-query -0.5 SELECT 1",
		},
		{
			name: "missing query text",
			line: "timed-query 0.042",
		},
		{
			name: "whitespace-only query text",
			line: "timed-query 0.042   ",
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := p.ParseLine(tt.line)
			if !tt.wantMatch {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantQuery, m.Query)
			assert.InDelta(t, tt.wantElapsed, m.Elapsed, 1e-9)
			assert.False(t, m.HasTimestamp)
		})
	}
}

func TestParseLine_WithTimestamps(t *testing.T) {
	p := NewParser(Config{Marker: "timed-query", Timestamps: true})

	t.Run("valid prefix", func(t *testing.T) {
		m, ok := p.ParseLine("2017-03-01 10:15:02,123 DEBUG timed-query 0.042 SELECT * FROM users")
		require.True(t, ok)
		assert.Equal(t, "SELECT * FROM users", m.Query)
		assert.InDelta(t, 0.042, m.Elapsed, 1e-9)
		require.True(t, m.HasTimestamp)

		want := time.Date(2017, 3, 1, 10, 15, 2, 123_000_000, time.UTC)
		assert.True(t, m.Timestamp.Equal(want))
	})

	t.Run("malformed prefix", func(t *testing.T) {
		_, ok := p.ParseLine("2017/03/01 10:15:02.123 timed-query 0.042 SELECT 1")
		assert.False(t, ok)
	})

	t.Run("line shorter than prefix", func(t *testing.T) {
		_, ok := p.ParseLine("timed-query 0.042 S")
		assert.False(t, ok)
	})
}

func TestParseLine_CustomMarker(t *testing.T) {
	p := NewParser(Config{Marker: "QUERY_MS"})

	m, ok := p.ParseLine("app[1234] QUERY_MS 12.5 DELETE FROM sessions WHERE expired = 1")
	require.True(t, ok)
	assert.Equal(t, "DELETE FROM sessions WHERE expired = 1", m.Query)
	assert.InDelta(t, 12.5, m.Elapsed, 1e-9)
}
