package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fleet-dashboard-service/internal/dashboard/core/domain"
	"fleet-dashboard-service/internal/dashboard/core/ports"
)

var ErrDashboardUnavailable = errors.New("dashboard data unavailable")

type GetDashboardUseCase struct {
	reader     ports.EventRowReaderPort
	aggregator *Aggregator
	limit      int
	log        *zap.Logger
}

type GetDashboardOption func(*GetDashboardUseCase)

// WithRowLimit lowers the number of rows fetched. Values outside
// (0, ports.MaxRows] are ignored.
func WithRowLimit(n int) GetDashboardOption {
	return func(uc *GetDashboardUseCase) {
		if n > 0 && n <= ports.MaxRows {
			uc.limit = n
		}
	}
}

func WithLogger(l *zap.Logger) GetDashboardOption {
	return func(uc *GetDashboardUseCase) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewGetDashboardUseCase(reader ports.EventRowReaderPort, aggregator *Aggregator, opts ...GetDashboardOption) *GetDashboardUseCase {
	if aggregator == nil {
		aggregator = NewAggregator()
	}
	uc := &GetDashboardUseCase{
		reader:     reader,
		aggregator: aggregator,
		limit:      ports.MaxRows,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute fetches the most recent rows and rebuilds every view. On a read
// failure the empty dashboard is returned together with the error.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*domain.Dashboard, error) {
	rows, err := uc.reader.ListRecent(ctx, uc.limit)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.EmptyDashboard(), ctxErr
		}
		uc.log.Error("failed to fetch vehicle events", zap.Error(err))
		return domain.EmptyDashboard(), fmt.Errorf("%w: %v", ErrDashboardUnavailable, err)
	}

	// The caller went away while the query was in flight.
	if err := ctx.Err(); err != nil {
		return domain.EmptyDashboard(), err
	}

	if len(rows) > uc.limit {
		rows = rows[:uc.limit]
	}

	dash := uc.aggregator.Aggregate(rows)
	uc.log.Debug("dashboard rebuilt",
		zap.Int("rows", len(rows)),
		zap.String("peak_hour", dash.Metrics.PeakHour),
	)
	return dash, nil
}
