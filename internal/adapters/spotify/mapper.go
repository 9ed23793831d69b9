package spotify

import "github.com/ewilliams-labs/coda/internal/core/domain"

// mapTrackMetadata flattens a raw Spotify track into the dataset's metadata
// shape. id is the id the track was requested under, which is also the join
// key across the output datasets.
func mapTrackMetadata(id string, st spotifyTrack) domain.TrackMetadata {
	md := domain.TrackMetadata{
		TrackID:          id,
		AlbumType:        st.Album.Type,
		AlbumID:          st.Album.ID,
		AlbumName:        st.Album.Name,
		AlbumReleaseDate: st.Album.ReleaseDate,
		DurationMs:       st.DurationMs,
		IsLocal:          st.IsLocal,
		Name:             st.Name,
		Popularity:       st.Popularity,
		Type:             st.Type,
	}

	// Only the first two credited artists are kept. For single-artist
	// tracks the second slot stays nil, never an empty string.
	if len(st.Artists) > 0 {
		md.Artist1ID = st.Artists[0].ID
		md.Artist1Name = st.Artists[0].Name
		md.Artist1Type = st.Artists[0].Type
	}
	if len(st.Artists) > 1 {
		second := st.Artists[1]
		md.Artist2ID = &second.ID
		md.Artist2Name = &second.Name
		md.Artist2Type = &second.Type
	}

	return md
}

// mapAudioFeatures converts a raw features payload, keyed by the requested
// track id.
func mapAudioFeatures(id string, sf spotifyAudioFeatures) domain.AudioFeatures {
	return domain.AudioFeatures{
		TrackID:          id,
		Danceability:     sf.Danceability,
		Energy:           sf.Energy,
		Key:              sf.Key,
		Loudness:         sf.Loudness,
		Mode:             sf.Mode,
		Speechiness:      sf.Speechiness,
		Acousticness:     sf.Acousticness,
		Instrumentalness: sf.Instrumentalness,
		Liveness:         sf.Liveness,
		Valence:          sf.Valence,
		Tempo:            sf.Tempo,
		TimeSignature:    sf.TimeSignature,
	}
}
