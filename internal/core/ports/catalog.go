package ports

import (
	"context"
	"errors"

	"github.com/ewilliams-labs/coda/internal/core/domain"
)

// ErrTrackNotFound indicates a search query matched nothing in the catalog.
var ErrTrackNotFound = errors.New("no track matched query")

// ErrTimeout indicates a catalog request exceeded its deadline.
var ErrTimeout = errors.New("catalog request timed out")

// ErrFeaturesUnavailable indicates the catalog holds no audio features for a
// track.
var ErrFeaturesUnavailable = errors.New("audio features unavailable")

// CatalogProvider looks tracks up in the upstream music catalog.
//
// ResolveTrackID maps a free-text "artist title" query to a track id. It
// reports ErrTrackNotFound or ErrTimeout for the two recoverable absence
// cases; any other error is a hard upstream failure.
//
// GetAudioFeatures reports ErrFeaturesUnavailable when the catalog has no
// feature vector for the track, and ErrTimeout on deadline; everything else
// is a hard failure. GetTrackMetadata has no recoverable outcomes.
type CatalogProvider interface {
	ResolveTrackID(ctx context.Context, query string) (string, error)
	GetTrackMetadata(ctx context.Context, id string) (domain.TrackMetadata, error)
	GetAudioFeatures(ctx context.Context, id string) (domain.AudioFeatures, error)
}
