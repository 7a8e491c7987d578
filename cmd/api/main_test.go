package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"qa-backend/internal/database"
	"qa-backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoModel struct{}

func (echoModel) Complete(ctx context.Context, question string) (string, error) {
	return "echo: " + question, nil
}

func newTestServer(t *testing.T) *http.Server {
	db, err := database.NewDatabase("", filepath.Join(t.TempDir(), "db", "conversations.db"))
	require.NoError(t, err)

	m := metrics.NewMetrics("qa_backend", prometheus.NewRegistry())
	return createServer(database.NewConversationStore(db), echoModel{}, m, 0, time.Minute)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Contains(t, []string{"*", "http://localhost:3000"}, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSPreflightAllMethods(t *testing.T) {
	server := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/conversations", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", method)
			rec := httptest.NewRecorder()
			server.Handler.ServeHTTP(rec, req)

			assert.Less(t, rec.Code, 300)
			assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServerRoutes(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "hi"}`))
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"answer":"echo: hi"`)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `qa_backend_ask_requests_total{outcome="success"} 1`)
}
