package azuredevops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driven"
	"github.com/custodia-labs/adoid/internal/logger"
)

// maxResponseBytes caps how much of a profile response is read.
const maxResponseBytes = 1 << 20

// Ensure Client implements the interface.
var _ driven.ProfileAPI = (*Client)(nil)

// Config holds Client configuration.
type Config struct {
	// ProfileBaseURL hosts the cloud profile service.
	ProfileBaseURL string
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration
	// RateLimit paces outbound requests. A zero rate disables pacing.
	RateLimit RateLimitConfig
}

// DefaultConfig returns the configuration used against the public service.
func DefaultConfig() Config {
	return Config{
		ProfileBaseURL: DefaultProfileBaseURL,
		Timeout:        30 * time.Second,
		RateLimit:      DefaultRateLimit,
	}
}

// Client fetches the caller's profile from Azure DevOps.
// It holds no per-call state and is safe for concurrent use. The rate
// limiter is shared by every call made through the same Client.
type Client struct {
	profileBaseURL string
	httpClient     *http.Client
	rateLimiter    *RateLimiter
}

// NewClient creates a client from cfg. Zero fields fall back to DefaultConfig.
func NewClient(cfg Config) *Client {
	defaults := DefaultConfig()
	if cfg.ProfileBaseURL == "" {
		cfg.ProfileBaseURL = defaults.ProfileBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	return &Client{
		profileBaseURL: cfg.ProfileBaseURL,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		rateLimiter:    NewRateLimiter(cfg.RateLimit),
	}
}

// SelectEndpoint decides which endpoint and response shape apply to serverURL.
func (c *Client) SelectEndpoint(serverURL, organization string) domain.Endpoint {
	return selectEndpoint(c.profileBaseURL, serverURL, organization)
}

// FetchProfile issues a single GET against endpoint and normalises the response.
// Non-success responses are returned as *StatusError.
func (c *Client) FetchProfile(
	ctx context.Context,
	endpoint domain.Endpoint,
	authHeader string,
) (*domain.UserProfile, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-TFS-FedAuthRedirect", "Suppress")
	req.Header.Set("X-TFS-Session", uuid.NewString())

	logger.Debug("azuredevops: GET %s (%s)", endpoint.URL, endpoint.Mode)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read profile response: %w", err)
	}

	logger.Debug("azuredevops: profile response status %d, body length %d", resp.StatusCode, len(body))

	if statusErr := WrapError(resp.StatusCode); statusErr != nil {
		return nil, &StatusError{StatusCode: resp.StatusCode, Err: statusErr}
	}

	if endpoint.Mode == domain.HostingCloud {
		var profile CloudProfile
		if err := json.Unmarshal(body, &profile); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		return NormalizeCloudProfile(&profile)
	}

	var data ConnectionData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode connection data: %w", err)
	}
	return NormalizeConnectionData(&data)
}
