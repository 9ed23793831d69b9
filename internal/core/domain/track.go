package domain

// TrackMetadata is the fixed projection of a catalog track lookup.
// The second-artist fields are nil when the track credits a single artist;
// they are never defaulted to empty strings.
type TrackMetadata struct {
	TrackID          string
	AlbumType        string
	AlbumID          string
	AlbumName        string
	AlbumReleaseDate string
	Artist1ID        string
	Artist1Name      string
	Artist1Type      string
	Artist2ID        *string
	Artist2Name      *string
	Artist2Type      *string
	DurationMs       int
	IsLocal          bool
	Name             string
	Popularity       int
	Type             string
}

// AudioFeatures is the numeric descriptor vector the catalog computes per
// track. TrackID is threaded through so the feature table can be joined back
// to the metadata table.
type AudioFeatures struct {
	TrackID          string
	Danceability     float64
	Energy           float64
	Key              int
	Loudness         float64
	Mode             int
	Speechiness      float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Valence          float64
	Tempo            float64
	TimeSignature    int
}
