package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// ResolveTrackID searches the catalog for query and returns the id of the
// first result. Ranking is left entirely to the API; no client-side
// rescoring happens here.
func (c *Client) ResolveTrackID(ctx context.Context, query string) (string, error) {
	searchURL, err := url.Parse(fmt.Sprintf("%s/search", c.baseURL))
	if err != nil {
		return "", fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "track")
	searchURL.RawQuery = q.Encode()

	c.log.Debug("search request", zap.String("url", searchURL.String()))

	ctx, cancel := context.WithTimeout(ctx, c.searchTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, searchURL.String())
	if err != nil {
		return "", fmt.Errorf("spotify adapter: create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("spotify adapter: search %q: %w", query, ports.ErrTimeout)
		}
		return "", fmt.Errorf("spotify adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	var searchBody struct {
		Tracks struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"tracks"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&searchBody); err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("spotify adapter: search %q: %w", query, ports.ErrTimeout)
		}
		return "", fmt.Errorf("spotify adapter: search decode error: %w", err)
	}

	if len(searchBody.Tracks.Items) == 0 {
		return "", fmt.Errorf("spotify adapter: search %q: %w", query, ports.ErrTrackNotFound)
	}

	return searchBody.Tracks.Items[0].ID, nil
}
