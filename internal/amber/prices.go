package amber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/o6elisk/amber-scan-simple/internal/metrics"
	"github.com/o6elisk/amber-scan-simple/pkg/retry"
)

const defaultBaseURL = "https://api.amber.com.au/v1"

// APIClient implements Client against the Amber REST API.
// Transient failures (network errors, 5xx) are retried under the
// configured policy; auth and not-found errors are not.
type APIClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
	retry       retry.Policy
}

// APIOption configures the APIClient.
type APIOption func(*APIClient)

// WithBaseURL overrides the default Amber API endpoint.
func WithBaseURL(u string) APIOption {
	return func(c *APIClient) {
		c.baseURL = u
	}
}

// WithAPIHTTPClient overrides the default HTTP client.
func WithAPIHTTPClient(hc *http.Client) APIOption {
	return func(c *APIClient) {
		c.client = hc
	}
}

// WithAPIRateLimiter injects a rate limiter that controls per-second and
// daily API call limits. When set, every call goes through Wait() first.
func WithAPIRateLimiter(r *RateLimiter) APIOption {
	return func(c *APIClient) {
		c.rateLimiter = r
	}
}

// WithRetryPolicy overrides the default outbound retry policy.
func WithRetryPolicy(p retry.Policy) APIOption {
	return func(c *APIClient) {
		c.retry = p
	}
}

// NewAPIClient creates a new Amber API client.
func NewAPIClient(opts ...APIOption) *APIClient {
	c := &APIClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		retry:   retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sites returns the sites attached to the account identified by apiToken.
func (c *APIClient) Sites(ctx context.Context, apiToken string) ([]Site, error) {
	var sites []Site
	if err := c.get(ctx, apiToken, "/sites", &sites); err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, ErrNoSites
	}
	return sites, nil
}

// CurrentPrices returns the current-interval price records for a site.
func (c *APIClient) CurrentPrices(
	ctx context.Context,
	apiToken, siteID string,
) ([]IntervalReading, error) {
	var readings []IntervalReading
	path := fmt.Sprintf("/sites/%s/prices/current", siteID)
	if err := c.get(ctx, apiToken, path, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// get performs an authenticated GET under the retry policy, decoding the
// JSON response into dst.
func (c *APIClient) get(ctx context.Context, apiToken, path string, dst any) error {
	err := c.retry.Do(ctx, func() error {
		return c.getOnce(ctx, apiToken, path, dst)
	})
	if err != nil {
		metrics.AmberAPIErrorsTotal.Inc()
		return err
	}
	return nil
}

func (c *APIClient) getOnce(ctx context.Context, apiToken, path string, dst any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.AmberDailyLimitHits.Inc()
			}
			return retry.Permanent(fmt.Errorf("rate limit: %w", err))
		}
		metrics.AmberDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, http.NoBody,
	)
	if err != nil {
		return retry.Permanent(fmt.Errorf("creating HTTP request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Accept", "application/json")

	metrics.AmberAPICallsTotal.Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing Amber request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return retry.Permanent(ErrUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return retry.Permanent(ErrNotFound)
	case resp.StatusCode >= 500:
		return fmt.Errorf("amber API error (status %d): %s", resp.StatusCode, body)
	default:
		return retry.Permanent(fmt.Errorf(
			"amber API error (status %d): %s", resp.StatusCode, body,
		))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return retry.Permanent(fmt.Errorf("parsing Amber response: %w", err))
	}

	return nil
}
