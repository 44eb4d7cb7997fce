package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"fleet-dashboard-service/internal/telemetry/core/domain"
	"fleet-dashboard-service/internal/telemetry/core/usecase"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// Fake repository implementing VehicleEventRepositoryPort
type fakeEventRepo struct {
	InsertFn func(ctx context.Context, e *domain.VehicleEvent) (bool, error)
}

func (f *fakeEventRepo) InsertEvent(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
	return f.InsertFn(ctx, e)
}

func boolPtr(b bool) *bool { return &b }

// ------------------------------------------------------------
// SUCCESS TEST
// ------------------------------------------------------------
func TestStoreEvent_Success(t *testing.T) {
	called := false

	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
			called = true

			if e.DriverName != "Ana" {
				t.Fatalf("expected trimmed driver 'Ana', got %q", e.DriverName)
			}
			if e.EventType != "Celular" {
				t.Fatalf("expected event type 'Celular', got %s", e.EventType)
			}
			if !e.OccurredAt.Equal(fixedNow.Add(-time.Hour)) || e.OccurredAt.Location() != time.UTC {
				t.Fatalf("unexpected occurred_at: %v", e.OccurredAt)
			}
			if e.Flags.PhoneDetected == nil || !*e.Flags.PhoneDetected {
				t.Fatalf("expected phone flag to be kept")
			}
			if e.DedupeKey == "" {
				t.Fatalf("expected dedupe key, got empty")
			}

			return true, nil
		},
	}

	uc := usecase.NewStoreEventUseCase(repo, usecase.WithClock(clock))

	created, err := uc.Execute(context.Background(), usecase.StoreEventInput{
		Timestamp:  fixedNow.Add(-time.Hour).Unix(),
		DriverName: "  Ana ",
		EventType:  "Celular",
		Flags:      domain.Flags{PhoneDetected: boolPtr(true)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if !called {
		t.Fatalf("expected repository to be called")
	}
}

// ------------------------------------------------------------
// LOCAL TIME follows the vehicle zone
// ------------------------------------------------------------
func TestStoreEvent_LocalTimeFromZone(t *testing.T) {
	var got *domain.VehicleEvent
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
			got = e
			return true, nil
		},
	}

	uc := usecase.NewStoreEventUseCase(repo, usecase.WithClock(clock))

	_, err := uc.Execute(context.Background(), usecase.StoreEventInput{
		Timestamp: time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC).Unix(),
		TimeZone:  "America/Sao_Paulo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LocalTime.Hour() != 8 {
		t.Fatalf("expected local hour 8, got %d", got.LocalTime.Hour())
	}
	if got.OccurredAt.Hour() != 11 {
		t.Fatalf("expected utc hour 11, got %d", got.OccurredAt.Hour())
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------
func TestStoreEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.StoreEventInput
		want error
	}{
		{"missing_timestamp", usecase.StoreEventInput{}, usecase.ErrMissingTime},
		{"future_timestamp", usecase.StoreEventInput{Timestamp: fixedNow.Add(time.Minute).Unix()}, usecase.ErrFutureTime},
		{"bad_zone", usecase.StoreEventInput{Timestamp: fixedNow.Unix(), TimeZone: "Mars/Olympus"}, usecase.ErrUnknownTimeZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeEventRepo{
				InsertFn: func(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
					t.Fatalf("repository should not be called on invalid input")
					return false, nil
				},
			}
			uc := usecase.NewStoreEventUseCase(repo, usecase.WithClock(clock))

			_, err := uc.Execute(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, usecase.ErrInvalidEvent) {
				t.Fatalf("expected ErrInvalidEvent wrapper, got %v", err)
			}
		})
	}
}

// ------------------------------------------------------------
// DUPLICATE + DB ERROR
// ------------------------------------------------------------
func TestStoreEvent_Duplicate(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.NewStoreEventUseCase(repo, usecase.WithClock(clock))

	created, err := uc.Execute(context.Background(), usecase.StoreEventInput{Timestamp: fixedNow.Unix()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

func TestStoreEvent_RepoError(t *testing.T) {
	repo := &fakeEventRepo{
		InsertFn: func(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
			return false, errors.New("db down")
		},
	}
	uc := usecase.NewStoreEventUseCase(repo, usecase.WithClock(clock))

	if _, err := uc.Execute(context.Background(), usecase.StoreEventInput{Timestamp: fixedNow.Unix()}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
