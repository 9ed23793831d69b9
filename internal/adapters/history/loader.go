package history

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ewilliams-labs/coda/internal/core/domain"
	"github.com/ewilliams-labs/coda/internal/core/ports"
)

// The export reports end times on the account's home-region clock, three
// hours behind the listener's. The shift is part of the dataset contract,
// not something derived from the running machine's zone.
const endTimeShift = 3 * time.Hour

// streamingEntry mirrors one element of the StreamingHistory.json export.
type streamingEntry struct {
	ArtistName string `json:"artistName"`
	TrackName  string `json:"trackName"`
	EndTime    string `json:"endTime"`
}

// Loader reads a Spotify streaming history export from disk.
type Loader struct {
	path string
}

// compile-time interface assertion
var _ ports.HistorySource = (*Loader)(nil)

// NewLoader constructs a Loader for the export file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the export and returns its records in file order, with the
// fixed end-time shift already applied.
func (l *Loader) Load() ([]domain.StreamRecord, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("history loader: %w", err)
	}

	var entries []streamingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("history loader: parse %s: %w", l.path, err)
	}

	records := make([]domain.StreamRecord, 0, len(entries))
	for i, e := range entries {
		endTime, err := time.Parse(domain.EndTimeLayout, e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("history loader: record %d: %w", i, err)
		}
		records = append(records, domain.StreamRecord{
			ArtistName: e.ArtistName,
			TrackName:  e.TrackName,
			EndTime:    endTime.Add(endTimeShift),
		})
	}

	return records, nil
}
