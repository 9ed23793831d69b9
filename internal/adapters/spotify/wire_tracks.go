package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ewilliams-labs/coda/internal/core/domain"
)

// GetTrackMetadata fetches the track object for id and projects it down to
// the dataset's metadata shape. The call carries no deadline of its own;
// only the parent context bounds it.
func (c *Client) GetTrackMetadata(ctx context.Context, id string) (domain.TrackMetadata, error) {
	url := fmt.Sprintf("%s/tracks/%s", c.baseURL, id)
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return domain.TrackMetadata{}, fmt.Errorf("spotify adapter: create track request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TrackMetadata{}, fmt.Errorf("spotify adapter: track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.TrackMetadata{}, fmt.Errorf("spotify adapter: track %s status %d", id, resp.StatusCode)
	}

	var tr spotifyTrack
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return domain.TrackMetadata{}, fmt.Errorf("spotify adapter: track decode error: %w", err)
	}

	return mapTrackMetadata(id, tr), nil
}
