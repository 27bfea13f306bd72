package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListNotes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	notes := []*Note{
		{Title: "First", Content: "one", CreatedAt: base},
		{Title: "Hidden", Content: "shh", IsSecret: true, CreatedAt: base.Add(time.Minute)},
		{Title: "Second", Content: "two", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, n := range notes {
		_, err := db.CreateNote(ctx, n)
		require.NoError(t, err)
	}

	public, err := db.ListNotes(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Second", public[0].Title)
	assert.Equal(t, "First", public[1].Title)
	for _, n := range public {
		assert.False(t, n.IsSecret)
	}

	secret, err := db.ListNotes(ctx, true)
	require.NoError(t, err)
	require.Len(t, secret, 1)
	assert.Equal(t, "Hidden", secret[0].Title)
	assert.Equal(t, "shh", secret[0].Content)

	total, err := db.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestListNotesTiesBreakOnID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	same := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	for _, title := range []string{"a", "b", "c"} {
		_, err := db.CreateNote(ctx, &Note{Title: title, Content: title, CreatedAt: same})
		require.NoError(t, err)
	}

	notes, err := db.ListNotes(ctx, false)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{notes[0].Title, notes[1].Title, notes[2].Title})
}

func TestFirstSecretNote(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	note, err := db.FirstSecretNote(ctx)
	require.NoError(t, err)
	assert.Nil(t, note)

	_, err = db.CreateNote(ctx, &Note{Title: "public", Content: "x"})
	require.NoError(t, err)
	_, err = db.CreateNote(ctx, &Note{Title: "first secret", Content: "forever yours", IsSecret: true})
	require.NoError(t, err)
	_, err = db.CreateNote(ctx, &Note{Title: "second secret", Content: "again", IsSecret: true})
	require.NoError(t, err)

	note, err = db.FirstSecretNote(ctx)
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "first secret", note.Title)
	assert.Equal(t, "forever yours", note.Content)
	assert.True(t, note.IsSecret)
}
