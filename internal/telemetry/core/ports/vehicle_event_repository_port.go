package ports

import (
	"context"

	"fleet-dashboard-service/internal/telemetry/core/domain"
)

type VehicleEventRepositoryPort interface {
	// InsertEvent:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertEvent(ctx context.Context, e *domain.VehicleEvent) (created bool, err error)
}
