package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler(HealthHandlerParams{Config: newTestConfig()})
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	c, rec := newContext(newTestEcho(t), jsonRequest(http.MethodGet, "/health", ""), nil)

	require.NoError(t, h.Check(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"operational","time":"2026-03-01T12:00:00Z","env":"test"}`, rec.Body.String())
}
