package ports

import "github.com/ewilliams-labs/coda/internal/core/domain"

// HistorySource loads the user's streaming history records.
type HistorySource interface {
	Load() ([]domain.StreamRecord, error)
}
