package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(t *testing.T, db *DB)
		check func(t *testing.T, db *DB, result SeedResult)
	}{
		{
			name: "seeds eight notes and eight memories on empty database",
			check: func(t *testing.T, db *DB, result SeedResult) {
				assert.Equal(t, SeedResult{Notes: 8, Memories: 8}, result)

				notes, err := db.CountNotes(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 8, notes)

				memories, err := db.CountMemories(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 8, memories)
			},
		},
		{
			name: "seeded notes are all public",
			check: func(t *testing.T, db *DB, result SeedResult) {
				secret, err := db.ListNotes(context.Background(), true)
				require.NoError(t, err)
				assert.Empty(t, secret)

				note, err := db.FirstSecretNote(context.Background())
				require.NoError(t, err)
				assert.Nil(t, note)
			},
		},
		{
			name: "memory dates follow the startup year",
			check: func(t *testing.T, db *DB, result SeedResult) {
				memories, err := db.ListMemories(context.Background())
				require.NoError(t, err)
				require.Len(t, memories, 8)

				assert.Equal(t, "Five Months & First Valentine's", memories[0].Title)
				assert.Equal(t, "2026-02-14", memories[0].MemoryDate.Time.Format(time.DateOnly))
				assert.Equal(t, "Four Months of Growth", memories[1].Title)
				assert.Equal(t, "2026-01-14", memories[1].MemoryDate.Time.Format(time.DateOnly))
				assert.Equal(t, "The Beginning of Us", memories[6].Title)
				assert.Equal(t, "2025-08-10", memories[6].MemoryDate.Time.Format(time.DateOnly))

				future := memories[7]
				assert.Equal(t, "Our Future Together", future.Title)
				assert.False(t, future.MemoryDate.Valid)
				assert.Equal(t, "future", future.Category.String)
			},
		},
		{
			name: "existing notes block note seeding only",
			setup: func(t *testing.T, db *DB) {
				_, err := db.CreateNote(context.Background(), &Note{Title: "mine", Content: "user note"})
				require.NoError(t, err)
			},
			check: func(t *testing.T, db *DB, result SeedResult) {
				assert.Equal(t, SeedResult{Notes: 0, Memories: 8}, result)

				notes, err := db.CountNotes(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 1, notes)
			},
		},
		{
			name: "existing memories block memory seeding only",
			setup: func(t *testing.T, db *DB) {
				_, err := db.CreateMemory(context.Background(), &Memory{Title: "mine"})
				require.NoError(t, err)
			},
			check: func(t *testing.T, db *DB, result SeedResult) {
				assert.Equal(t, SeedResult{Notes: 8, Memories: 0}, result)

				memories, err := db.CountMemories(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 1, memories)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			if tt.setup != nil {
				tt.setup(t, db)
			}

			result, err := db.Seed(context.Background(), now)
			require.NoError(t, err)
			tt.check(t, db, result)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := db.Seed(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Notes: 8, Memories: 8}, first)

	second, err := db.Seed(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, second)

	notes, err := db.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, notes)

	memories, err := db.CountMemories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, memories)
}
