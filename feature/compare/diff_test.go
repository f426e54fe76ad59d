package compare

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"logdiff/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff-a-b")

	records := []reconcile.Record{
		{Query: "SELECT * FROM users", Elapsed: 0.042},
		{Query: "UPDATE t SET v = 1", Elapsed: 1.5},
	}
	require.NoError(t, WriteDiff(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.042 SELECT * FROM users\n1.500 UPDATE t SET v = 1\n", string(data))
}

func TestWriteDiff_WithTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff-a-b")

	ts := time.Date(2017, 3, 1, 10, 15, 2, 123_000_000, time.UTC)
	records := []reconcile.Record{
		{Query: "SELECT 1", Elapsed: 0.01, Timestamp: ts, HasTimestamp: true},
	}
	require.NoError(t, WriteDiff(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2017-03-01 10:15:02,123 0.010 SELECT 1\n", string(data))
}

func TestWriteDiff_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff-a-b")

	require.NoError(t, WriteDiff(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
