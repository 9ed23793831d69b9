package spotify

// spotifyTrack represents the Spotify API response for a single track.
// Only the fields the datasets project out are decoded.
type spotifyTrack struct {
	Album      spotifyAlbum    `json:"album"`
	Artists    []spotifyArtist `json:"artists"`
	DurationMs int             `json:"duration_ms"`
	IsLocal    bool            `json:"is_local"`
	Name       string          `json:"name"`
	Popularity int             `json:"popularity"`
	Type       string          `json:"type"`
}

// spotifyAlbum is the album object embedded in a track response.
type spotifyAlbum struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	Type        string `json:"type"`
}

// spotifyArtist is an artist object embedded in a track response.
type spotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// spotifyAudioFeatures represents the Spotify API response for a track's
// audio analysis summary.
type spotifyAudioFeatures struct {
	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Key              int     `json:"key"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Speechiness      float64 `json:"speechiness"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
	TimeSignature    int     `json:"time_signature"`
}
