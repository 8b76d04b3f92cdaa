package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fpl-draft-board/internal/store"
)

// Client is the single HTTP boundary to the draft API. Every call is one
// blocking GET with no retries; callers decide whether a failed endpoint is
// fatal to their operation.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Sleep     time.Duration

	// Archive, when non-nil, receives a copy of every successful body.
	Archive *store.JSONStore
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		BaseURL:   baseURL,
		UserAgent: "fpl-draft-board/1.0",
		Sleep:     250 * time.Millisecond,
	}
}

// GetJSON fetches urlPath (like "/bootstrap-static") and returns the raw
// body. Transport errors, non-2xx statuses and non-JSON bodies all come
// back as errors; each call and each failure is logged here so callers
// don't have to.
func (c *Client) GetJSON(ctx context.Context, urlPath string, archivePath string) ([]byte, error) {
	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	url := c.BaseURL + urlPath
	slog.Info("fetching", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		slog.Error("fetch failed", "url", url, "error", err)
		return nil, fmt.Errorf("GET %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("GET %s failed: status %d", urlPath, resp.StatusCode)
		slog.Error("fetch failed", "url", url, "status", resp.StatusCode)
		return nil, err
	}
	if !json.Valid(body) {
		err := fmt.Errorf("GET %s: response is not valid JSON", urlPath)
		slog.Error("fetch failed", "url", url, "error", err)
		return nil, err
	}

	if c.Archive != nil && archivePath != "" {
		if err := c.Archive.Write(archivePath, body); err != nil {
			slog.Warn("archive write failed", "path", archivePath, "error", err)
		}
	}
	return body, nil
}
