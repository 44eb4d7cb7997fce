package fiber

import (
	"context"
	"errors"
	"net/http"

	"fleet-dashboard-service/internal/telemetry/core/domain"
	"fleet-dashboard-service/internal/telemetry/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
}

func NewEventHandler(storeUC StoreEventUseCase) *EventHandler {
	return &EventHandler{storeUC: storeUC}
}

// CreateEvent godoc
// @Summary Ingest a vehicle event
// @Description Stores a single vehicle event row with idempotency handling
// @Tags Telemetry
// @Accept json
// @Produce json
// @Param X-API-Key header string false "Ingestion key, required when configured"
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeStoreError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateEventResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateEventResponse{Status: "created"})
}

// BulkCreateEvents godoc
// @Summary Bulk ingest vehicle events
// @Description Validates the whole batch, then stores each event individually
// @Tags Telemetry
// @Accept json
// @Produce json
// @Param X-API-Key header string false "Ingestion key, required when configured"
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func writeStoreError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidEvent) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

func toInput(r CreateEventRequest) usecase.StoreEventInput {
	return usecase.StoreEventInput{
		Timestamp:        r.Timestamp,
		TimeZone:         r.TimeZone,
		DriverName:       r.DriverName,
		DriverCPF:        r.DriverCPF,
		OperationType:    r.OperationType,
		CurrentOperation: r.CurrentOperation,
		EventType:        r.EventType,
		Flags: domain.Flags{
			PersonDetected: r.PersonDetected,
			EyesClosed:     r.EyesClosed,
			Yawn:           r.Yawn,
			PhoneDetected:  r.PhoneDetected,
			CorrectPosture: r.CorrectPosture,
			FalsePositive:  r.FalsePositive,
			Speeding:       r.Speeding,
			Panic:          r.Panic,
		},
	}
}
