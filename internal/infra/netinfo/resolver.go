// Package netinfo resolves the base URL the helpdesk advertises to visitors:
// the public tunnel URL when an ngrok agent is running locally, otherwise the
// server's LAN address.
package netinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultTunnelAPI = "http://127.0.0.1:4040/api/tunnels"

// Resolver discovers and caches the advertised base URL.
type Resolver struct {
	tunnelAPI  string
	port       int
	httpClient *http.Client

	mu     sync.Mutex
	cached string
}

// NewResolver builds a resolver. An empty tunnelAPI falls back to the default
// ngrok local agent endpoint; port is the port the HTTP server listens on.
func NewResolver(tunnelAPI string, port int) *Resolver {
	api := strings.TrimSpace(tunnelAPI)
	if api == "" {
		api = defaultTunnelAPI
	}
	return &Resolver{
		tunnelAPI: api,
		port:      port,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

// BaseURL returns the public tunnel URL when one is available and falls back
// to the LAN address otherwise. A discovered tunnel URL is cached for the
// process lifetime.
func (r *Resolver) BaseURL(ctx context.Context) string {
	r.mu.Lock()
	cached := r.cached
	r.mu.Unlock()
	if cached != "" {
		return cached
	}

	if url, err := r.tunnelURL(ctx); err == nil && url != "" {
		r.mu.Lock()
		r.cached = url
		r.mu.Unlock()
		return url
	}

	return fmt.Sprintf("http://%s:%d", localIP(), r.port)
}

type tunnelList struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
	} `json:"tunnels"`
}

func (r *Resolver) tunnelURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.tunnelAPI, nil)
	if err != nil {
		return "", fmt.Errorf("build tunnel request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tunnel request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("tunnel request error: status=%d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("read tunnel response: %w", err)
	}
	var list tunnelList
	if err := json.Unmarshal(body, &list); err != nil {
		return "", fmt.Errorf("parse tunnel response: %w", err)
	}
	for _, tunnel := range list.Tunnels {
		if tunnel.PublicURL != "" {
			return tunnel.PublicURL, nil
		}
	}
	return "", nil
}

// localIP returns the LAN IP by opening a UDP socket towards a public
// address; no packet is actually sent.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return addr.IP.String()
}
