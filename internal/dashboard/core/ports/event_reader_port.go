package ports

import (
	"context"

	"fleet-dashboard-service/internal/dashboard/core/domain"
)

// MaxRows bounds a single dashboard fetch.
const MaxRows = 2000

type EventRowReaderPort interface {
	// ListRecent returns at most limit rows ordered by local timestamp, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.EventRow, error)
}
