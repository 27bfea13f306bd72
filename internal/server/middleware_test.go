package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestsAreLogged(t *testing.T) {
	ts := newTestServer(t, false)
	core, logs := observer.New(zap.InfoLevel)
	ts.logger = zap.New(core)

	rec := ts.do(t, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/stats", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestPanicIsLoggedAsServerError(t *testing.T) {
	ts := newTestServer(t, false)
	core, logs := observer.New(zap.InfoLevel)
	ts.logger = zap.New(core)
	ts.router.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := ts.do(t, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, 1, logs.FilterMessage("panic serving request").Len())
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusInternalServerError), entries[0].ContextMap()["status"])
}

func TestAbortHandlerIsNotRecovered(t *testing.T) {
	ts := newTestServer(t, false)
	ts.router.HandleFunc("GET /abort", func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		ts.do(t, http.MethodGet, "/abort", "")
	})
}
