package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newPostgresTestDB connects to VALENTINE_TEST_POSTGRES_URL and starts from an
// empty schema. The tables are dropped again when the test ends.
func newPostgresTestDB(t *testing.T) *DB {
	t.Helper()

	url := os.Getenv("VALENTINE_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("VALENTINE_TEST_POSTGRES_URL not set")
	}

	db, err := New(DriverPostgres, url)
	require.NoError(t, err)

	dropTables := func() {
		_, err := db.ExecContext(context.Background(),
			`DROP TABLE IF EXISTS valentine_responses, love_notes, memories, goose_db_version`)
		require.NoError(t, err)
	}
	dropTables()
	t.Cleanup(func() {
		dropTables()
		db.Close()
	})

	return db
}

func TestPostgres(t *testing.T) {
	db := newPostgresTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, db.Migrate(ctx, zaptest.NewLogger(t)))
	require.NoError(t, db.Migrate(ctx, zaptest.NewLogger(t)))
	assert.Equal(t, DriverPostgres, db.Driver())

	t.Run("seed is idempotent", func(t *testing.T) {
		result, err := db.Seed(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, SeedResult{Notes: 8, Memories: 8}, result)

		result, err = db.Seed(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, SeedResult{}, result)
	})

	t.Run("memories dated descending then undated", func(t *testing.T) {
		all, err := db.ListMemories(ctx)
		require.NoError(t, err)
		require.Len(t, all, 8)

		assert.Equal(t, "2026-02-14", all[0].MemoryDate.Time.Format(time.DateOnly))
		assert.Equal(t, "2025-08-10", all[6].MemoryDate.Time.Format(time.DateOnly))
		for i := 1; i < 7; i++ {
			require.True(t, all[i].MemoryDate.Valid)
			assert.True(t, all[i-1].MemoryDate.Time.After(all[i].MemoryDate.Time), i)
		}
		assert.False(t, all[7].MemoryDate.Valid)
		assert.Equal(t, "future", all[7].Category.String)
	})

	t.Run("category filter breaks ties by newest id", func(t *testing.T) {
		createdAt := now.Add(time.Hour)
		for _, title := range []string{"first", "second"} {
			_, err := db.CreateMemory(ctx, &Memory{
				Title:      title,
				MemoryDate: date(2026, time.March, 1),
				CreatedAt:  createdAt,
				Category:   nullString("trip"),
			})
			require.NoError(t, err)
		}

		trips, err := db.ListMemoriesByCategory(ctx, "trip")
		require.NoError(t, err)
		assert.Equal(t, []string{"second", "first"}, memoryTitles(trips))
	})

	t.Run("notes newest first without secrets", func(t *testing.T) {
		_, err := db.CreateNote(ctx, &Note{Title: "latest", Content: "hi", CreatedAt: now.Add(24 * time.Hour)})
		require.NoError(t, err)
		_, err = db.CreateNote(ctx, &Note{Title: "hidden", Content: "shh", IsSecret: true})
		require.NoError(t, err)

		public, err := db.ListNotes(ctx, false)
		require.NoError(t, err)
		require.Len(t, public, 9)
		assert.Equal(t, "latest", public[0].Title)
		for _, n := range public {
			assert.False(t, n.IsSecret, n.Title)
		}

		secret, err := db.FirstSecretNote(ctx)
		require.NoError(t, err)
		require.NotNil(t, secret)
		assert.Equal(t, "hidden", secret.Title)
	})

	t.Run("responses and stats", func(t *testing.T) {
		for _, decision := range []string{"yes", "Yes", "no"} {
			_, err := db.CreateResponse(ctx, &Response{GirlfriendName: "Maria", Response: decision})
			require.NoError(t, err)
		}

		stats, err := db.GetResponseStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &ResponseStats{Total: 3, Yes: 1}, stats)

		responses, err := db.ListResponses(ctx)
		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Equal(t, "no", responses[0].Response)
	})
}
