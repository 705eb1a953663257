// Package httpsrc fetches graph payloads from the analysis backend over
// HTTP.
package httpsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source retrieves graph payloads from the analysis backend's REST API.
type Source struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSourceParams configures a Source. BaseURL is the analysis backend root;
// APIKey, when set, is sent as a bearer token.
type NewSourceParams struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewSource creates an HTTP payload source.
func NewSource(params NewSourceParams) *Source {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Source{
		baseURL: strings.TrimSuffix(params.BaseURL, "/"),
		apiKey:  params.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the raw graph payload for the given session. Any network
// or non-2xx failure is returned as-is; the caller surfaces it as a blocking
// error state and does not retry.
func (s *Source) Fetch(ctx context.Context, sessionID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/sessions/%s/graph", s.baseURL, url.PathEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch graph payload: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("graph payload request returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph payload: %w", err)
	}

	return body, nil
}
