package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/api/shared"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()
	log, buf := logger.GetTestLogger(t)

	var seen string
	handler := Trace(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(shared.TraceIDHeader))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, seen, entry["trace_id"])
	}
	assert.Equal(t, "request started", entries[0]["msg"])
}
