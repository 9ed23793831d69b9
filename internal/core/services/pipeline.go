package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ewilliams-labs/coda/internal/core/domain"
	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// Pipeline drives the dataset build end to end: load the history, resolve
// track ids, fetch metadata and audio features, persist the three artifacts.
type Pipeline struct {
	history  ports.HistorySource
	catalog  ports.CatalogProvider
	datasets ports.DatasetWriter
	log      *zap.Logger
}

// NewPipeline constructs a Pipeline.
func NewPipeline(history ports.HistorySource, catalog ports.CatalogProvider, datasets ports.DatasetWriter, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		history:  history,
		catalog:  catalog,
		datasets: datasets,
		log:      log,
	}
}

// Run executes one full build. Stages run strictly in sequence, one request
// at a time, and each artifact is written as its stage completes. A fatal
// failure therefore leaves every later artifact unwritten.
func (p *Pipeline) Run(ctx context.Context) error {
	log := p.log.With(zap.String("run_id", uuid.NewString()))

	// 1. Load the history.
	records, err := p.history.Load()
	if err != nil {
		return fmt.Errorf("pipeline: load history: %w", err)
	}
	log.Info("history loaded", zap.Int("records", len(records)))

	// 2. Resolve each distinct query exactly once. A query that matches
	// nothing or times out resolves to the empty id and the run goes on;
	// any other failure aborts.
	idByQuery := make(map[string]string)
	unresolved := 0
	for _, r := range records {
		q := r.Query()
		if _, seen := idByQuery[q]; seen {
			continue
		}

		id, err := p.catalog.ResolveTrackID(ctx, q)
		switch {
		case errors.Is(err, ports.ErrTrackNotFound):
			log.Warn("unmatched query", zap.String("query", q))
			id = ""
			unresolved++
		case errors.Is(err, ports.ErrTimeout):
			log.Warn("search timed out", zap.String("query", q))
			id = ""
			unresolved++
		case err != nil:
			return fmt.Errorf("pipeline: resolve query %q: %w", q, err)
		}
		idByQuery[q] = id
	}
	log.Info("queries resolved",
		zap.Int("queries", len(idByQuery)),
		zap.Int("unresolved", unresolved))

	// 3. Annotate every record with its id; absence carries through as "".
	annotated := make([]domain.AnnotatedRecord, 0, len(records))
	for _, r := range records {
		annotated = append(annotated, domain.AnnotatedRecord{
			StreamRecord: r,
			TrackID:      idByQuery[r.Query()],
		})
	}

	// 4. Fetch metadata once per distinct id, in first-appearance order.
	var tracks []domain.TrackMetadata
	seen := make(map[string]bool)
	for _, r := range annotated {
		if r.TrackID == "" || seen[r.TrackID] {
			continue
		}
		seen[r.TrackID] = true

		md, err := p.catalog.GetTrackMetadata(ctx, r.TrackID)
		if err != nil {
			return fmt.Errorf("pipeline: track %s: %w", r.TrackID, err)
		}
		tracks = append(tracks, md)
	}
	if err := p.datasets.WriteTracks(tracks); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	log.Info("track metadata written", zap.Int("tracks", len(tracks)))

	// 5. Fetch features for every id in the metadata table. Tracks the
	// catalog has not analyzed simply drop out of the feature table.
	var features []domain.AudioFeatures
	for _, md := range tracks {
		af, err := p.catalog.GetAudioFeatures(ctx, md.TrackID)
		switch {
		case errors.Is(err, ports.ErrFeaturesUnavailable):
			log.Warn("audio features unavailable", zap.String("track_id", md.TrackID))
			continue
		case errors.Is(err, ports.ErrTimeout):
			log.Warn("features request timed out", zap.String("track_id", md.TrackID))
			continue
		case err != nil:
			return fmt.Errorf("pipeline: features %s: %w", md.TrackID, err)
		}
		features = append(features, af)
	}
	if err := p.datasets.WriteFeatures(features); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	log.Info("audio features written", zap.Int("features", len(features)))

	// 6. The annotated history goes last, one row per input record.
	if err := p.datasets.WriteHistory(annotated); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	log.Info("history written", zap.Int("records", len(annotated)))

	return nil
}
