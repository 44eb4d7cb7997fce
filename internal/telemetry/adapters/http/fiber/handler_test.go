package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-dashboard-service/internal/telemetry/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreEventUseCase struct {
	ExecuteFunc         func(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateFunc      func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
	LastExecuteInput    usecase.StoreEventInput
	LastBulkCreateInput usecase.BulkCreateEventsInput
	called              bool
}

func (f *fakeStoreEventUseCase) Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
	f.called = true
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreEventUseCase) BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
	f.called = true
	f.LastBulkCreateInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return usecase.BulkCreateEventsResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc StoreEventUseCase, apiKey string) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc)

	guard := RequireAPIKey(apiKey)
	app.Post("/api/events", guard, h.CreateEvent)
	app.Post("/api/events/bulk", guard, h.BulkCreateEvents)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(http.MethodPost, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestCreateEvent_Created(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return true, nil
		},
	}
	app := setupTestApp(fakeUC, "")

	yes := true
	reqBody := CreateEventRequest{
		Timestamp:     time.Now().Add(-time.Minute).Unix(),
		TimeZone:      "America/Sao_Paulo",
		DriverName:    "Ana",
		EventType:     "Celular",
		PhoneDetected: &yes,
	}

	resp, body := doRequest(t, app, "/api/events", reqBody, nil)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var respJSON CreateEventResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Status != "created" {
		t.Errorf("expected status=created, got %v", respJSON.Status)
	}

	in := fakeUC.LastExecuteInput
	if in.DriverName != "Ana" || in.TimeZone != "America/Sao_Paulo" {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Flags.PhoneDetected == nil || !*in.Flags.PhoneDetected {
		t.Errorf("expected phone flag to be mapped")
	}
	if in.Flags.Yawn != nil {
		t.Errorf("expected absent flag to stay nil")
	}
}

func TestCreateEvent_Duplicate(t *testing.T) {
	app := setupTestApp(&fakeStoreEventUseCase{}, "")

	resp, body := doRequest(t, app, "/api/events", CreateEventRequest{Timestamp: 1}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var respJSON CreateEventResponse
	_ = json.Unmarshal(body, &respJSON)
	if respJSON.Status != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", respJSON.Status)
	}
}

func TestCreateEvent_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC, "")

	resp, _ := doRequest(t, app, "/api/events", `{bad`, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if fakeUC.called {
		t.Fatalf("usecase should not be called on invalid json")
	}
}

func TestCreateEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing_time", fmt.Errorf("%w: %w", usecase.ErrInvalidEvent, usecase.ErrMissingTime), http.StatusBadRequest},
		{"future_time", fmt.Errorf("%w: %w", usecase.ErrInvalidEvent, usecase.ErrFutureTime), http.StatusBadRequest},
		{"db_error", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeUC := &fakeStoreEventUseCase{
				ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
					return false, tt.err
				},
			}
			resp, _ := doRequest(t, setupTestApp(fakeUC, ""), "/api/events", CreateEventRequest{}, nil)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestBulkCreateEvents_Success(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{Created: 2, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(fakeUC, "")

	ts := time.Now().Add(-time.Minute).Unix()
	reqBody := BulkCreateEventsRequest{Events: []CreateEventRequest{
		{Timestamp: ts}, {Timestamp: ts}, {Timestamp: ts - 1},
	}}

	resp, body := doRequest(t, app, "/api/events/bulk", reqBody, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var respJSON BulkCreateEventsResponse
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON.Created != 2 || respJSON.Duplicates != 1 {
		t.Errorf("unexpected result: %+v", respJSON)
	}
	if len(fakeUC.LastBulkCreateInput.Events) != 3 {
		t.Errorf("expected 3 events passed to usecase, got %d", len(fakeUC.LastBulkCreateInput.Events))
	}
}

func TestBulkCreateEvents_EmptyList(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC, "")

	resp, body := doRequest(t, app, "/api/events/bulk", BulkCreateEventsRequest{}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	var respJSON ErrorResponse
	_ = json.Unmarshal(body, &respJSON)
	if respJSON.Error != "events_list_required" {
		t.Errorf("expected events_list_required, got %s", respJSON.Error)
	}
	if fakeUC.called {
		t.Fatalf("usecase should not be called on empty list")
	}
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		status int
	}{
		{"missing", nil, http.StatusUnauthorized},
		{"wrong", map[string]string{HeaderAPIKey: "nope"}, http.StatusUnauthorized},
		{"valid", map[string]string{HeaderAPIKey: "k-1"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeUC := &fakeStoreEventUseCase{}
			resp, _ := doRequest(t, setupTestApp(fakeUC, "k-1"), "/api/events", CreateEventRequest{Timestamp: 1}, tt.header)
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
			if tt.status == http.StatusUnauthorized && fakeUC.called {
				t.Fatalf("usecase should not be reached without a valid key")
			}
		})
	}
}
