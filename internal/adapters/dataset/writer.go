package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ewilliams-labs/coda/internal/core/domain"
	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// trackRow is the tracks.csv projection. Column order follows field order
// and is part of the artifact contract: downstream consumers index on this
// exact layout, id column last.
type trackRow struct {
	AlbumType        string  `csv:"album_type"`
	AlbumID          string  `csv:"album_id"`
	AlbumName        string  `csv:"album_name"`
	AlbumReleaseDate string  `csv:"album_release_date"`
	Artist1ID        string  `csv:"artist1_id"`
	Artist1Name      string  `csv:"artist1_name"`
	Artist1Type      string  `csv:"artist1_type"`
	Artist2ID        *string `csv:"artist2_id"`
	Artist2Name      *string `csv:"artist2_name"`
	Artist2Type      *string `csv:"artist2_type"`
	DurationMs       int     `csv:"duration_ms"`
	IsLocal          bool    `csv:"is_local"`
	Name             string  `csv:"name"`
	Popularity       int     `csv:"popularity"`
	Type             string  `csv:"type"`
	TrackID          string  `csv:"id_"`
}

// featureRow is the features.csv projection, id first.
type featureRow struct {
	TrackID          string  `csv:"id_"`
	Danceability     float64 `csv:"danceability"`
	Energy           float64 `csv:"energy"`
	Key              int     `csv:"key"`
	Loudness         float64 `csv:"loudness"`
	Mode             int     `csv:"mode"`
	Speechiness      float64 `csv:"speechiness"`
	Acousticness     float64 `csv:"acousticness"`
	Instrumentalness float64 `csv:"instrumentalness"`
	Liveness         float64 `csv:"liveness"`
	Valence          float64 `csv:"valence"`
	Tempo            float64 `csv:"tempo"`
	TimeSignature    int     `csv:"time_signature"`
}

// historyRow is the streaming_history.csv projection. The derived query
// column is persisted alongside the raw record fields.
type historyRow struct {
	ArtistName  string `csv:"artistName"`
	TrackName   string `csv:"trackName"`
	EndTime     string `csv:"endTime"`
	ArtistTrack string `csv:"artist+track"`
	TrackID     string `csv:"id_"`
}

// Writer persists the three dataset artifacts under a single directory.
type Writer struct {
	dir string
}

// compile-time interface assertion
var _ ports.DatasetWriter = (*Writer)(nil)

// NewWriter constructs a Writer rooted at dir. The directory is created on
// first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteTracks persists the metadata table as tracks.csv.
func (w *Writer) WriteTracks(tracks []domain.TrackMetadata) error {
	rows := make([]trackRow, 0, len(tracks))
	for _, md := range tracks {
		rows = append(rows, trackRow{
			AlbumType:        md.AlbumType,
			AlbumID:          md.AlbumID,
			AlbumName:        md.AlbumName,
			AlbumReleaseDate: md.AlbumReleaseDate,
			Artist1ID:        md.Artist1ID,
			Artist1Name:      md.Artist1Name,
			Artist1Type:      md.Artist1Type,
			Artist2ID:        md.Artist2ID,
			Artist2Name:      md.Artist2Name,
			Artist2Type:      md.Artist2Type,
			DurationMs:       md.DurationMs,
			IsLocal:          md.IsLocal,
			Name:             md.Name,
			Popularity:       md.Popularity,
			Type:             md.Type,
			TrackID:          md.TrackID,
		})
	}
	return w.writeFile("tracks.csv", &rows)
}

// WriteFeatures persists the feature table as features.csv.
func (w *Writer) WriteFeatures(features []domain.AudioFeatures) error {
	rows := make([]featureRow, 0, len(features))
	for _, af := range features {
		rows = append(rows, featureRow{
			TrackID:          af.TrackID,
			Danceability:     af.Danceability,
			Energy:           af.Energy,
			Key:              af.Key,
			Loudness:         af.Loudness,
			Mode:             af.Mode,
			Speechiness:      af.Speechiness,
			Acousticness:     af.Acousticness,
			Instrumentalness: af.Instrumentalness,
			Liveness:         af.Liveness,
			Valence:          af.Valence,
			Tempo:            af.Tempo,
			TimeSignature:    af.TimeSignature,
		})
	}
	return w.writeFile("features.csv", &rows)
}

// WriteHistory persists the annotated history as streaming_history.csv, one
// row per input record in input order. Unresolved ids render as empty cells.
func (w *Writer) WriteHistory(records []domain.AnnotatedRecord) error {
	rows := make([]historyRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, historyRow{
			ArtistName:  r.ArtistName,
			TrackName:   r.TrackName,
			EndTime:     r.EndTime.Format(domain.EndTimeLayout),
			ArtistTrack: r.Query(),
			TrackID:     r.TrackID,
		})
	}
	return w.writeFile("streaming_history.csv", &rows)
}

func (w *Writer) writeFile(name string, rows interface{}) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("dataset writer: %w", err)
	}

	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset writer: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("dataset writer: write %s: %w", path, err)
	}
	return nil
}
