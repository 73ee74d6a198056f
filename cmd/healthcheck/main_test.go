package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/Grandillionaire/council-landing/internal/adapter/driving/http"
	"github.com/Grandillionaire/council-landing/internal/config"
)

func TestDialAddr(t *testing.T) {
	tests := []struct {
		listen string
		want   string
	}{
		{listen: "", want: config.DefaultListenAddr},
		{listen: "not-an-addr", want: config.DefaultListenAddr},
		{listen: "127.0.0.1:", want: config.DefaultListenAddr},
		{listen: "0.0.0.0:9000", want: "127.0.0.1:9000"},
		{listen: ":9000", want: "127.0.0.1:9000"},
		{listen: "[::]:9000", want: "[::1]:9000"},
		{listen: "10.0.0.5:8080", want: "10.0.0.5:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.listen, func(t *testing.T) {
			assert.Equal(t, tt.want, dialAddr(tt.listen))
		})
	}
}

func TestHealthURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:9000"+httphandler.HealthPath, healthURL("0.0.0.0:9000"))
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"status":"ok","time":"2026-01-01T00:00:00Z"}`},
		{name: "server error", status: http.StatusServiceUnavailable, body: `{"status":"ok"}`, wantErr: true},
		{name: "wrong status", status: http.StatusOK, body: `{"status":"starting"}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `<html></html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := checkHealth(context.Background(), srv.Client(), srv.URL+httphandler.HealthPath)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUnhealthy)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL + httphandler.HealthPath
	srv.Close()

	err := checkHealth(context.Background(), http.DefaultClient, target)

	require.Error(t, err)
	assert.NotErrorIs(t, err, errUnhealthy)
}

func TestRun_AgainstHealthRoute(t *testing.T) {
	mux := http.NewServeMux()
	httphandler.RegisterRoutes(mux, httphandler.NewHandler(slog.New(slog.DiscardHandler)))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Setenv(config.EnvPrefix+"LISTEN_ADDR", srv.Listener.Addr().String())

	var stderr bytes.Buffer
	assert.Equal(t, 0, run(&stderr))
	assert.Empty(t, stderr.String())
}

func TestRun_NothingListening(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.Listener.Addr().String()
	srv.Close()

	t.Setenv(config.EnvPrefix+"LISTEN_ADDR", addr)

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(&stderr))
	assert.Contains(t, stderr.String(), "healthcheck:")
}
