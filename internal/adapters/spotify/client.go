package spotify

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// DefaultBaseURL is the production Spotify Web API endpoint.
const DefaultBaseURL = "https://api.spotify.com/v1"

const (
	defaultSearchTimeout   = 5 * time.Second
	defaultFeaturesTimeout = 5 * time.Second
)

// Client is an HTTP client for the Spotify Web API.
//
// Every request is issued exactly once. A 429 from the API surfaces as a
// status error like any other, so a rate-limited run fails instead of
// backing off and resuming.
// TODO: honor Retry-After on 429 so long histories survive rate limiting.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *zap.Logger

	searchTimeout   time.Duration
	featuresTimeout time.Duration
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// NewClient constructs a new Spotify client that authenticates with token.
func NewClient(httpClient *http.Client, baseURL, token string, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient:      httpClient,
		baseURL:         strings.TrimRight(baseURL, "/"),
		token:           token,
		log:             log,
		searchTimeout:   defaultSearchTimeout,
		featuresTimeout: defaultFeaturesTimeout,
	}
}

func (c *Client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}

// isTimeout reports whether err was caused by a request deadline expiring.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
