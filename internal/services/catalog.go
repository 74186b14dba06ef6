// Song collection service client
//
// The collection service exposes two endpoints under a base URL:
//
//	GET  <base>/songs?artist=&mood=&sort=
//	POST <base>/create
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/soundfolio/internal/models"
	"github.com/desertthunder/soundfolio/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL string = "http://localhost:8080/songfolio/my-music"

// maxErrorBody caps how much of a failed response body is kept in the error message.
const maxErrorBody = 512

// CatalogOpts contains configuration options for creating a [CatalogService].
type CatalogOpts struct {
	BaseURL           string
	HTTPClient        *http.Client
	Timeout           time.Duration // Per-request timeout, 0 for none
	RequestsPerSecond float64       // Request spacing, 0 for unlimited
}

// CatalogService implements [Catalog] over HTTP.
//
// Every call is a single attempt: failures are returned, never retried.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
}

// NewCatalogService creates a new collection service client.
func NewCatalogService(opts CatalogOpts) *CatalogService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &CatalogService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		timeout:    opts.Timeout,
		limiter:    limiter,
	}
}

// BaseURL returns the collection service base URL without a trailing slash.
func (c *CatalogService) BaseURL() string {
	return c.baseURL
}

// ListSongs fetches the collection matching q.
//
// Calls GET /songs with only the non-empty query parameters.
func (c *CatalogService) ListSongs(ctx context.Context, q models.QueryState) (models.Collection, error) {
	endpoint := "/songs"
	if params := q.Params(); len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var songs models.Collection
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &songs); err != nil {
		return nil, err
	}

	if songs == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of songs, got null", shared.ErrMalformedResponse)
	}

	return songs, nil
}

// CreateSong stores a new song. Any 2xx status is success; the response body is ignored.
//
// Calls POST /create.
func (c *CatalogService) CreateSong(ctx context.Context, payload models.SongPayload) error {
	return c.doRequest(ctx, http.MethodPost, "/create", payload, nil)
}

func (c *CatalogService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrNetworkFailure, err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", shared.ErrInvalidInput, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", shared.ErrNetworkFailure, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", shared.ErrNetworkFailure, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s %s: status %d: %s",
			shared.ErrServerFailure, method, endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if result == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", shared.ErrNetworkFailure, err)
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrMalformedResponse, err)
	}

	return nil
}
