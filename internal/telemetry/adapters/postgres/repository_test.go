package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"fleet-dashboard-service/internal/telemetry/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func sampleEvent() *domain.VehicleEvent {
	yes := true
	occurred := time.Date(2024, 5, 1, 11, 30, 0, 0, time.UTC)
	return &domain.VehicleEvent{
		OccurredAt: occurred,
		LocalTime:  occurred.In(time.FixedZone("-03", -3*3600)),
		DriverName: "Ana",
		EventType:  "Celular",
		Flags:      domain.Flags{PhoneDetected: &yes},
		DedupeKey:  "dk",
	}
}

// ------------------------------------------------------------
// SUCCESS (created)
// ------------------------------------------------------------

func TestVehicleEventRepository_InsertEvent_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO dados_veiculo") {
				t.Fatalf("unexpected query: %s", query)
			}
			if !strings.Contains(query, "ON CONFLICT (dedupe_key) DO NOTHING") {
				t.Fatalf("expected idempotent insert: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewVehicleEventRepository(db)

	created, err := repo.InsertEvent(context.Background(), sampleEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if len(db.lastArgs) != 16 {
		t.Fatalf("expected 16 args, got %d", len(db.lastArgs))
	}
}

// ------------------------------------------------------------
// ARGUMENT MAPPING
// ------------------------------------------------------------

func TestVehicleEventRepository_InsertEvent_Args(t *testing.T) {
	db := &fakeDB{}
	repo := NewVehicleEventRepository(db)

	if _, err := repo.InsertEvent(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if db.lastArgs[0] != "2024-05-01 08:30:00" {
		t.Fatalf("expected local wall clock, got %v", db.lastArgs[0])
	}
	if db.lastArgs[2] != "Ana" {
		t.Fatalf("expected driver name, got %v", db.lastArgs[2])
	}
	if db.lastArgs[3] != nil {
		t.Fatalf("expected empty cpf to be NULL, got %v", db.lastArgs[3])
	}
	if db.lastArgs[10] != true {
		t.Fatalf("expected phone flag true, got %v", db.lastArgs[10])
	}
	if db.lastArgs[11] != nil {
		t.Fatalf("expected unset posture to be NULL, got %v", db.lastArgs[11])
	}
	if db.lastArgs[15] != "dk" {
		t.Fatalf("expected dedupe key last, got %v", db.lastArgs[15])
	}
}

// ------------------------------------------------------------
// DUPLICATE (rowsAffected=0)
// ------------------------------------------------------------

func TestVehicleEventRepository_InsertEvent_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	created, err := NewVehicleEventRepository(db).InsertEvent(context.Background(), sampleEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestVehicleEventRepository_InsertEvent_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	created, err := NewVehicleEventRepository(db).InsertEvent(context.Background(), sampleEvent())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}
