package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ewilliams-labs/coda/internal/core/domain"
	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// GetAudioFeatures fetches the audio analysis summary for id. The API answers
// 503 for tracks it has never analyzed, so that status maps to
// ports.ErrFeaturesUnavailable rather than a hard failure.
func (c *Client) GetAudioFeatures(ctx context.Context, id string) (domain.AudioFeatures, error) {
	url := fmt.Sprintf("%s/audio-features/%s", c.baseURL, id)

	ctx, cancel := context.WithTimeout(ctx, c.featuresTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, url)
	if err != nil {
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: create features request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s: %w", id, ports.ErrTimeout)
		}
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s: %w", id, ports.ErrFeaturesUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s status %d", id, resp.StatusCode)
	}

	var sf spotifyAudioFeatures
	if err := json.NewDecoder(resp.Body).Decode(&sf); err != nil {
		if isTimeout(err) {
			return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s: %w", id, ports.ErrTimeout)
		}
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features decode error: %w", err)
	}

	return mapAudioFeatures(id, sf), nil
}
