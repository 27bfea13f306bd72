package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResponse(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	resp := &Response{
		GirlfriendName: "Maria",
		Response:       "yes",
		Message:        sql.NullString{String: "of course", Valid: true},
		IPAddress:      sql.NullString{String: "10.0.0.7", Valid: true},
		CreatedAt:      time.Date(2026, time.February, 1, 12, 30, 15, 999, time.UTC),
	}
	id, err := db.CreateResponse(ctx, resp)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, resp.ID)

	all, err := db.ListResponses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, "Maria", got.GirlfriendName)
	assert.Equal(t, "yes", got.Response)
	assert.Equal(t, "of course", got.Message.String)
	assert.Equal(t, "10.0.0.7", got.IPAddress.String)
	assert.True(t, got.CreatedAt.Equal(time.Date(2026, time.February, 1, 12, 30, 15, 0, time.UTC)))
	assert.True(t, got.SaidYes())
}

func TestCreateResponseWithoutAddress(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.CreateResponse(ctx, &Response{GirlfriendName: "My Love", Response: "no"})
	require.NoError(t, err)

	all, err := db.ListResponses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IPAddress.Valid)
	assert.False(t, all[0].Message.Valid)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestListResponsesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	for i, decision := range []string{"no", "maybe", "yes"} {
		_, err := db.CreateResponse(ctx, &Response{
			GirlfriendName: "Maria",
			Response:       decision,
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := db.ListResponses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "yes", all[0].Response)
	assert.Equal(t, "maybe", all[1].Response)
	assert.Equal(t, "no", all[2].Response)
}

func TestGetResponseStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	stats, err := db.GetResponseStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Yes)
	assert.Zero(t, stats.YesRate())

	// Only an exact "yes" counts.
	for _, decision := range []string{"yes", "Yes", "yes ", "no", "yes"} {
		_, err := db.CreateResponse(ctx, &Response{GirlfriendName: "Maria", Response: decision})
		require.NoError(t, err)
	}

	stats, err = db.GetResponseStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Yes)
	assert.InDelta(t, 40.0, stats.YesRate(), 0.0001)
}
