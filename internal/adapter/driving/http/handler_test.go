package httphandler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/Grandillionaire/council-landing/internal/adapter/driving/http"
)

// --- Test helpers ---

func setupMux(logger *slog.Logger, extra func(mux *http.ServeMux)) http.Handler {
	mux := http.NewServeMux()
	httphandler.RegisterRoutes(mux, httphandler.NewHandler(logger))
	if extra != nil {
		extra(mux)
	}
	return httphandler.ApplyMiddleware(mux, logger)
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// logLines decodes every JSON log record written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		lines = append(lines, m)
	}
	return lines
}

// --- Tests ---

func TestHealth(t *testing.T) {
	mux := setupMux(slog.Default(), nil)

	req := httptest.NewRequest(http.MethodGet, httphandler.HealthPath, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var resp httphandler.HealthResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp.Status)
	_, err := time.Parse(time.RFC3339, resp.Time)
	assert.NoError(t, err)
}

func TestHealth_WrongMethod(t *testing.T) {
	mux := setupMux(slog.Default(), nil)

	req := httptest.NewRequest(http.MethodPost, httphandler.HealthPath, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when absent", incoming: "", wantSame: false},
		{name: "propagated when present", incoming: "edge-1234", wantSame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			mux := setupMux(slog.Default(), func(mux *http.ServeMux) {
				mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
					seen = httphandler.RequestID(r.Context())
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(httphandler.RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			got := rec.Header().Get(httphandler.RequestIDHeader)
			assert.Equal(t, got, seen)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggingMiddleware_RecordsStatus(t *testing.T) {
	logger, buf := captureLogger()
	mux := setupMux(logger, func(mux *http.ServeMux) {
		mux.HandleFunc("GET /teapot", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(httphandler.RequestIDHeader, "req-1")
	mux.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "http request", lines[0]["msg"])
	assert.Equal(t, "GET", lines[0]["method"])
	assert.Equal(t, "/teapot", lines[0]["path"])
	assert.EqualValues(t, http.StatusTeapot, lines[0]["status"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, buf := captureLogger()
	mux := setupMux(logger, func(mux *http.ServeMux) {
		mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "internal server error", body["error"])

	lines := logLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "panic recovered", lines[0]["msg"])
	assert.Equal(t, "boom", lines[0]["panic"])
	assert.EqualValues(t, http.StatusInternalServerError, lines[1]["status"])
}

func TestRecoveryMiddleware_AfterPartialWrite(t *testing.T) {
	mux := setupMux(slog.Default(), func(mux *http.ServeMux) {
		mux.HandleFunc("GET /partial", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>"))
			panic("late")
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/partial", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>", rec.Body.String())
}

func TestMiddleware_PreservesFlusher(t *testing.T) {
	mux := setupMux(slog.Default(), func(mux *http.ServeMux) {
		mux.HandleFunc("GET /stream", func(w http.ResponseWriter, _ *http.Request) {
			f, ok := w.(http.Flusher)
			require.True(t, ok)
			_, _ = w.Write([]byte("chunk"))
			f.Flush()
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.True(t, rec.Flushed)
	assert.Equal(t, "chunk", rec.Body.String())
}
