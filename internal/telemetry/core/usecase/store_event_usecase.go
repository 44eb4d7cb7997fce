package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fleet-dashboard-service/internal/telemetry/core/domain"
	"fleet-dashboard-service/internal/telemetry/core/ports"
)

var (
	ErrInvalidEvent    = errors.New("invalid event")
	ErrMissingTime     = errors.New("timestamp is required")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
	ErrUnknownTimeZone = errors.New("unknown time zone")
)

type StoreEventUseCase struct {
	repo ports.VehicleEventRepositoryPort
	log  *zap.Logger
	now  func() time.Time
}

type Option func(*StoreEventUseCase)

func WithLogger(log *zap.Logger) Option {
	return func(uc *StoreEventUseCase) {
		if log != nil {
			uc.log = log
		}
	}
}

// WithClock overrides the clock used for the future-timestamp check.
func WithClock(now func() time.Time) Option {
	return func(uc *StoreEventUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewStoreEventUseCase(repo ports.VehicleEventRepositoryPort, opts ...Option) *StoreEventUseCase {
	uc := &StoreEventUseCase{repo: repo, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type StoreEventInput struct {
	Timestamp int64 // unix seconds
	// TimeZone is the vehicle's IANA zone, used to derive the local wall
	// clock. Empty means UTC.
	TimeZone         string
	DriverName       string
	DriverCPF        string
	OperationType    string
	CurrentOperation string
	EventType        string
	Flags            domain.Flags
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (bool, error) {
	loc, err := uc.validateInput(in)
	if err != nil {
		return false, err
	}

	occurred := time.Unix(in.Timestamp, 0).UTC()

	e := &domain.VehicleEvent{
		OccurredAt:       occurred,
		LocalTime:        occurred.In(loc),
		DriverName:       strings.TrimSpace(in.DriverName),
		DriverCPF:        strings.TrimSpace(in.DriverCPF),
		OperationType:    strings.TrimSpace(in.OperationType),
		CurrentOperation: strings.TrimSpace(in.CurrentOperation),
		EventType:        strings.TrimSpace(in.EventType),
		Flags:            in.Flags,
	}
	e.DedupeKey = buildDedupeKey(e)

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		uc.log.Error("failed to insert vehicle event", zap.Error(err))
		return false, err
	}

	return created, nil
}

func buildDedupeKey(e *domain.VehicleEvent) string {
	// driver_cpf + driver_name + event_type + operation_type + unix_timestamp
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		e.DriverCPF,
		e.DriverName,
		e.EventType,
		e.OperationType,
		e.OccurredAt.Unix(),
	)
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates every event before inserting any of them.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	for i, ev := range in.Events {
		if _, err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.log.Debug("bulk events stored",
		zap.Int("created", res.Created),
		zap.Int("duplicates", res.Duplicates),
	)
	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) (*time.Location, error) {
	if in.Timestamp <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrMissingTime)
	}

	if in.Timestamp > uc.now().Unix() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrFutureTime)
	}

	if in.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(in.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidEvent, ErrUnknownTimeZone, in.TimeZone)
	}
	return loc, nil
}
