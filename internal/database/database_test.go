package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// newTestDB opens a migrated SQLite database in a temporary directory.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(DriverSQLite, filepath.Join(t.TempDir(), "valentine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background(), zaptest.NewLogger(t)))
	return db
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New("mysql", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrate(context.Background(), zaptest.NewLogger(t)))

	for _, table := range []string{"valentine_responses", "love_notes", "memories"} {
		n, err := count(context.Background(), db.DB, table)
		require.NoError(t, err, table)
		assert.Zero(t, n, table)
	}
}

func TestMigrateLogsThroughZap(t *testing.T) {
	db, err := New(DriverSQLite, filepath.Join(t.TempDir(), "valentine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, db.Migrate(context.Background(), zap.New(core)))

	applied := logs.FilterMessageSnippet("00001_init.sql").All()
	require.Len(t, applied, 1)
	assert.Equal(t, "goose", applied[0].LoggerName)
	assert.NotContains(t, applied[0].Message, "\n")
	assert.Equal(t, 1, logs.FilterMessageSnippet("successfully migrated database to version: 1").Len())

	logs.TakeAll()
	require.NoError(t, db.Migrate(context.Background(), zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessageSnippet("no migrations to run").Len())
}

func TestResponseStatsYesRate(t *testing.T) {
	tests := []struct {
		name     string
		stats    ResponseStats
		expected float64
	}{
		{name: "no responses", stats: ResponseStats{}, expected: 0},
		{name: "all yes", stats: ResponseStats{Total: 3, Yes: 3}, expected: 100},
		{name: "half yes", stats: ResponseStats{Total: 4, Yes: 2}, expected: 50},
		{name: "none yes", stats: ResponseStats{Total: 2, Yes: 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.YesRate(), 0.0001)
		})
	}
}
