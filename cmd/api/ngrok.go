package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultNgrokAPI = "http://ngrok:4040"

	ngrokAttempts = 10
	ngrokDelay    = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS
// tunnel URL, retrying while ngrok starts up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	publicURL, err := retry.DoWithData(
		func() (string, error) { return fetchTunnel(ctx, client, ngrokAPIBase+"/api/tunnels") },
		retry.Context(ctx),
		retry.Attempts(ngrokAttempts),
		retry.Delay(ngrokDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("ngrok URL not found after %d attempts: %w", ngrokAttempts, err)
	}
	return publicURL, nil
}

func fetchTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", retry.Unrecoverable(fmt.Errorf("failed to create ngrok API request: %w", err))
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", retry.Unrecoverable(fmt.Errorf("failed to decode ngrok API response: %w", err))
	}

	// Prefer HTTPS tunnels
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}
