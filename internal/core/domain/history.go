package domain

import "time"

// EndTimeLayout is the minute-precision timestamp format the streaming
// history export uses. The history dataset keeps the same layout on output.
const EndTimeLayout = "2006-01-02 15:04"

// StreamRecord is one play event from the user's streaming history export.
type StreamRecord struct {
	ArtistName string
	TrackName  string
	EndTime    time.Time
}

// Query returns the catalog search string for the record. Records sharing an
// artist and title produce the same query, which is what the pipeline
// deduplicates on.
func (r StreamRecord) Query() string {
	return r.ArtistName + " " + r.TrackName
}

// AnnotatedRecord is a StreamRecord carrying its resolved catalog track id.
// TrackID is empty when the query resolved to nothing.
type AnnotatedRecord struct {
	StreamRecord
	TrackID string
}
