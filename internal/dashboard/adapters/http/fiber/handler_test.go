package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "fleet-dashboard-service/internal/dashboard/adapters/http/fiber"
	"fleet-dashboard-service/internal/dashboard/core/domain"
	"fleet-dashboard-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetDashboardUseCase struct {
	ExecuteFn func(ctx context.Context) (*domain.Dashboard, error)
	called    bool
}

func (f *fakeGetDashboardUseCase) Execute(ctx context.Context) (*domain.Dashboard, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return domain.EmptyDashboard(), nil
}

func setupApp(t *testing.T, uc httpadapter.GetDashboardUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDashboardHandler(uc)
	app.Get("/api/dashboard", h.GetDashboard)
	return app
}

func doGet(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.Dashboard, error) {
			d := domain.EmptyDashboard()
			d.Events = []domain.EventTypeSummary{{Name: "Frenagem Brusca", Count: 2, Percentage: 66.7}}
			d.TopDrivers = []domain.DriverRanking{{
				Name: "Ana", Events: 12, MainEvent: "Frenagem Brusca",
				Badge: domain.BadgeAttention, BadgeLabel: "Attention",
			}}
			d.MonthlyRanking = []domain.MonthlyRanking{{
				Month: "January", Events: 2, Position: 1, Change: domain.ChangeUp, ChangeValue: 1,
			}}
			d.Metrics = domain.Metrics{TotalEvents: 2, ActiveDrivers: 1, PeakHour: "08:00", RiskScore: 1.5}
			return d, nil
		},
	}

	app := setupApp(t, uc)
	resp := doGet(t, app)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}

	var body httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body.Events) != 1 || body.Events[0].Percentage != 66.7 {
		t.Fatalf("unexpected events: %+v", body.Events)
	}
	if body.TopDrivers[0].Badge != "attention" {
		t.Fatalf("expected badge=attention, got %s", body.TopDrivers[0].Badge)
	}
	if body.MonthlyRanking[0].Change != "up" {
		t.Fatalf("expected change=up, got %s", body.MonthlyRanking[0].Change)
	}
	if body.Metrics.PeakHour != "08:00" || body.Metrics.TotalEvents != 2 {
		t.Fatalf("unexpected metrics: %+v", body.Metrics)
	}
}

// ------------------------------------------------------------
// EMPTY VIEWS ARE ARRAYS, NOT NULL
// ------------------------------------------------------------

func TestGetDashboard_EmptyViewsAreArrays(t *testing.T) {
	app := setupApp(t, &fakeGetDashboardUseCase{})
	resp := doGet(t, app)

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	for _, key := range []string{"events", "hourly_events", "top_drivers", "fatigue_by_hour", "behaviors", "monthly_ranking"} {
		if string(raw[key]) != "[]" {
			t.Fatalf("expected %s to be [], got %s", key, raw[key])
		}
	}
}

// ------------------------------------------------------------
// BACKEND UNAVAILABLE -> 502 with empty data
// ------------------------------------------------------------

func TestGetDashboard_Unavailable(t *testing.T) {
	uc := &fakeGetDashboardUseCase{
		ExecuteFn: func(ctx context.Context) (*domain.Dashboard, error) {
			return domain.EmptyDashboard(), fmt.Errorf("%w: db failure", usecase.ErrDashboardUnavailable)
		},
	}

	app := setupApp(t, uc)
	resp := doGet(t, app)

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.StatusCode)
	}

	var body httpadapter.DashboardErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "dashboard_unavailable" || body.Message == "" {
		t.Fatalf("unexpected error body: %+v", body)
	}
	if body.Data.Metrics.PeakHour != domain.NoPeakHour {
		t.Fatalf("expected empty dashboard data, got %+v", body.Data.Metrics)
	}
}

// ------------------------------------------------------------
// CANCELLED -> 503, OTHER -> 500
// ------------------------------------------------------------

func TestGetDashboard_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"cancelled", context.Canceled, http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeGetDashboardUseCase{
				ExecuteFn: func(ctx context.Context) (*domain.Dashboard, error) {
					return nil, tt.err
				},
			}

			resp := doGet(t, setupApp(t, uc))
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}
