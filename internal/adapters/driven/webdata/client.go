// Package webdata retrieves the calendar data documents from the static
// data tree over HTTP: one metadata document and one event document per
// date, keyed by ISO date in the path.
package webdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fincal-labs/fincal-cli/internal/core/domain"
	"github.com/fincal-labs/fincal-cli/internal/core/ports/driven"
	"github.com/fincal-labs/fincal-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.EventSource = (*Client)(nil)

const defaultTimeout = 15 * time.Second

// Client fetches metadata.json and events/<date>.json below a base URL.
// Each call is a single attempt; a 404 on a day document maps to
// domain.ErrNoData, everything else non-2xx or unparseable is a failure.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// New creates a client for a data tree base URL.
func New(baseURL string, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0, 0)
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		rateLimiter: limiter,
	}
}

// FetchMetadata retrieves the platform catalog document.
func (c *Client) FetchMetadata(ctx context.Context) (*domain.Metadata, error) {
	var md domain.Metadata
	if err := c.getJSON(ctx, c.baseURL+"/metadata.json", &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// FetchDay retrieves the event document for an ISO date. Returns
// domain.ErrNoData when the resource is absent.
func (c *Client) FetchDay(ctx context.Context, date string) (*domain.DayDocument, error) {
	var doc domain.DayDocument
	if err := c.getJSON(ctx, fmt.Sprintf("%s/events/%s.json", c.baseURL, date), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	requestID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Str("request_id", requestID).Str("url", url).Msg("request failed")
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug().Str("request_id", requestID).Str("url", url).Msg("resource absent")
		return domain.ErrNoData
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error().Int("status", resp.StatusCode).Str("request_id", requestID).Str("url", url).Msg("unexpected status")
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		logger.Error().Err(err).Str("request_id", requestID).Str("url", url).Msg("malformed document")
		return fmt.Errorf("decode %s: %w", url, err)
	}

	logger.Debug().Str("request_id", requestID).Str("url", url).Msg("document fetched")
	return nil
}
