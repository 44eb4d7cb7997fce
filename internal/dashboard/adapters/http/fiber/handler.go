package fiber

import (
	"context"
	"errors"
	"net/http"

	"fleet-dashboard-service/internal/dashboard/core/domain"
	"fleet-dashboard-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	uc GetDashboardUseCase
}

func NewDashboardHandler(uc GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary Fleet dashboard
// @Description Aggregates the latest vehicle events into event, hourly, driver, fatigue, behavior and monthly views
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} DashboardErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	res, err := h.uc.Execute(c.UserContext())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "request_cancelled",
				Message: "request was cancelled",
			})
		case errors.Is(err, usecase.ErrDashboardUnavailable):
			if res == nil {
				res = domain.EmptyDashboard()
			}
			return c.Status(http.StatusBadGateway).JSON(DashboardErrorResponse{
				Error:   "dashboard_unavailable",
				Message: "could not load dashboard data",
				Data:    toResponse(res),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

func toResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Events:         make([]EventTypeResponse, 0, len(d.Events)),
		HourlyEvents:   make([]HourlyEventResponse, 0, len(d.HourlyEvents)),
		TopDrivers:     make([]DriverResponse, 0, len(d.TopDrivers)),
		FatigueByHour:  make([]FatigueResponse, 0, len(d.FatigueByHour)),
		Behaviors:      make([]BehaviorResponse, 0, len(d.Behaviors)),
		MonthlyRanking: make([]MonthlyRankingResponse, 0, len(d.MonthlyRanking)),
		Metrics: MetricsResponse{
			TotalEvents:     d.Metrics.TotalEvents,
			ActiveDrivers:   d.Metrics.ActiveDrivers,
			PeakHour:        d.Metrics.PeakHour,
			RiskScore:       d.Metrics.RiskScore,
			MonthlyIncrease: d.Metrics.MonthlyIncrease,
			FatigueAlerts:   d.Metrics.FatigueAlerts,
		},
	}

	for _, e := range d.Events {
		resp.Events = append(resp.Events, EventTypeResponse{
			Name:       e.Name,
			Count:      e.Count,
			Percentage: e.Percentage,
		})
	}
	for _, h := range d.HourlyEvents {
		resp.HourlyEvents = append(resp.HourlyEvents, HourlyEventResponse{Hour: h.Hour, Events: h.Events})
	}
	for _, dr := range d.TopDrivers {
		resp.TopDrivers = append(resp.TopDrivers, DriverResponse{
			Name:       dr.Name,
			Events:     dr.Events,
			MainEvent:  dr.MainEvent,
			Badge:      string(dr.Badge),
			BadgeLabel: dr.BadgeLabel,
		})
	}
	for _, f := range d.FatigueByHour {
		resp.FatigueByHour = append(resp.FatigueByHour, FatigueResponse{Hour: f.Hour, Fatigue: f.Fatigue})
	}
	for _, b := range d.Behaviors {
		resp.Behaviors = append(resp.Behaviors, BehaviorResponse{
			Type:      b.Type,
			Count:     b.Count,
			Risk:      string(b.Risk),
			RiskLabel: b.RiskLabel,
		})
	}
	for _, m := range d.MonthlyRanking {
		resp.MonthlyRanking = append(resp.MonthlyRanking, MonthlyRankingResponse{
			Month:       m.Month,
			Events:      m.Events,
			Position:    m.Position,
			Change:      string(m.Change),
			ChangeValue: m.ChangeValue,
		})
	}

	return resp
}
