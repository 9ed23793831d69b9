package ports

import "github.com/ewilliams-labs/coda/internal/core/domain"

// DatasetWriter persists the pipeline's output artifacts. Each call replaces
// the artifact it names, so a run always produces a consistent set.
type DatasetWriter interface {
	WriteTracks(tracks []domain.TrackMetadata) error
	WriteFeatures(features []domain.AudioFeatures) error
	WriteHistory(records []domain.AnnotatedRecord) error
}
