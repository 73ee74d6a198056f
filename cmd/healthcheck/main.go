// Command healthcheck exits 0 when the landing server on this host answers
// its health endpoint, and 1 otherwise. It is the container HEALTHCHECK.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	httphandler "github.com/Grandillionaire/council-landing/internal/adapter/driving/http"
	"github.com/Grandillionaire/council-landing/internal/config"
)

const timeout = 2 * time.Second

var errUnhealthy = errors.New("unhealthy")

func main() {
	os.Exit(run(os.Stderr))
}

func run(stderr io.Writer) int {
	addr, err := config.ListenAddr()
	if err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := checkHealth(ctx, &http.Client{Timeout: timeout}, healthURL(addr)); err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}
	return 0
}

// checkHealth requires a 200 carrying the "ok" health status.
func checkHealth(ctx context.Context, client *http.Client, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", errUnhealthy, target, resp.StatusCode)
	}

	var body httphandler.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decoding response: %v", errUnhealthy, err)
	}
	if body.Status != httphandler.HealthStatusOK {
		return fmt.Errorf("%w: status %q", errUnhealthy, body.Status)
	}
	return nil
}

func healthURL(listenAddr string) string {
	u := url.URL{Scheme: "http", Host: dialAddr(listenAddr), Path: httphandler.HealthPath}
	return u.String()
}

// dialAddr turns the server's bind address into one reachable from inside
// the same container: wildcard hosts become loopback, and an address that
// does not parse falls back to the default.
func dialAddr(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil || port == "" {
		return config.DefaultListenAddr
	}

	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}
	return net.JoinHostPort(host, port)
}
