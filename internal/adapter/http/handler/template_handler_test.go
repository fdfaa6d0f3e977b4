package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/finflow/finflow/internal/adapter/http/dto"
	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

type templateServiceStub struct {
	createFn  func(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error)
	getFn     func(ctx context.Context, id string) (*domain.Template, error)
	listFn    func(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error)
	endFn     func(ctx context.Context, id string, endDate time.Time) (*domain.Template, error)
	previewFn func(ctx context.Context, id string, horizon time.Time) ([]time.Time, error)
}

func (s *templateServiceStub) CreateTemplate(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
	return s.createFn(ctx, input)
}

func (s *templateServiceStub) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	return s.getFn(ctx, id)
}

func (s *templateServiceStub) ListTemplates(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error) {
	return s.listFn(ctx, input)
}

func (s *templateServiceStub) EndTemplate(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
	return s.endFn(ctx, id, endDate)
}

func (s *templateServiceStub) PreviewSchedule(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
	return s.previewFn(ctx, id, horizon)
}

func newTemplateServiceStub() *templateServiceStub {
	return &templateServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
			return nil, nil
		},
		getFn: func(ctx context.Context, id string) (*domain.Template, error) { return nil, nil },
		listFn: func(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error) {
			return nil, nil
		},
		endFn: func(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
			return nil, nil
		},
		previewFn: func(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
			return nil, nil
		},
	}
}

func TestTemplateHandler_Create_Success(t *testing.T) {
	template := &domain.Template{
		ID:        "tpl-1",
		OwnerID:   "owner-1",
		Frequency: domain.FrequencyMonthly,
		Interval:  1,
		StartDate: domain.Date(2025, 1, 31),
	}

	stub := newTemplateServiceStub()
	var captured usecase.CreateTemplateInput
	stub.createFn = func(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
		captured = input
		return template, nil
	}
	handler := NewTemplateHandler(stub)

	body, _ := json.Marshal(dto.CreateTemplateRequest{
		OwnerID:     "owner-1",
		Description: "rent",
		Amount:      decimal.NewFromInt(1200),
		Kind:        "expense",
		Frequency:   "monthly",
		Interval:    1,
		StartDate:   "2025-01-31",
	})

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.OwnerID != "owner-1" || captured.Frequency != domain.FrequencyMonthly {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.StartDate != domain.Date(2025, 1, 31) {
		t.Fatalf("unexpected start date: %v", captured.StartDate)
	}

	var resp dto.TemplateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tpl-1" {
		t.Fatalf("expected template ID tpl-1, got %s", resp.ID)
	}
}

func TestTemplateHandler_Create_InvalidJSON(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.createFn = func(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
		t.Fatal("CreateTemplate should not be called for invalid payload")
		return nil, nil
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTemplateHandler_Create_ValidationError(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.createFn = func(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
		return nil, domain.ErrInvalidInterval
	}
	handler := NewTemplateHandler(stub)

	body, _ := json.Marshal(dto.CreateTemplateRequest{
		OwnerID:   "owner-1",
		Amount:    decimal.NewFromInt(100),
		Kind:      "expense",
		Frequency: "monthly",
		Interval:  0,
		StartDate: "2025-01-01",
	})

	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTemplateHandler_Get(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Template, error) {
		if id != "tpl-1" {
			t.Fatalf("expected id tpl-1, got %s", id)
		}
		return &domain.Template{ID: "tpl-1", StartDate: domain.Date(2025, 1, 1)}, nil
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/templates/tpl-1", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTemplateHandler_Get_NotFound(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.getFn = func(ctx context.Context, id string) (*domain.Template, error) {
		return nil, domain.ErrTemplateNotFound
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/templates/tpl-1", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTemplateHandler_List(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.listFn = func(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error) {
		if input.OwnerID != "owner-1" || input.Limit != 5 || input.Offset != 2 {
			t.Fatalf("expected owner-1 limit=5 offset=2, got %+v", input)
		}
		return []*domain.Template{
			{ID: "tpl-1", StartDate: domain.Date(2025, 1, 1)},
			{ID: "tpl-2", StartDate: domain.Date(2025, 2, 1)},
		}, nil
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/templates?owner_id=owner-1&limit=5&offset=2", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.TemplateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(resp))
	}
}

func TestTemplateHandler_List_MissingOwner(t *testing.T) {
	handler := NewTemplateHandler(newTemplateServiceStub())

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTemplateHandler_End(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.endFn = func(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
		if endDate != domain.Date(2025, 6, 30) {
			t.Fatalf("unexpected end date: %v", endDate)
		}
		end := endDate
		return &domain.Template{ID: id, StartDate: domain.Date(2025, 1, 1), EndDate: &end}, nil
	}
	handler := NewTemplateHandler(stub)

	body, _ := json.Marshal(dto.EndTemplateRequest{EndDate: "2025-06-30"})
	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/end", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.End(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestTemplateHandler_End_BeforeWatermark(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.endFn = func(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
		return nil, domain.ErrEndBeforeWatermark
	}
	handler := NewTemplateHandler(stub)

	body, _ := json.Marshal(dto.EndTemplateRequest{EndDate: "2025-01-02"})
	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/end", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.End(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTemplateHandler_Schedule(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.previewFn = func(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
		if horizon != domain.Date(2025, 3, 31) {
			t.Fatalf("unexpected horizon: %v", horizon)
		}
		return []time.Time{
			domain.Date(2025, 1, 31),
			domain.Date(2025, 2, 28),
			domain.Date(2025, 3, 31),
		}, nil
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/templates/tpl-1/schedule?as_of=2025-03-31", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Schedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Dates) != 3 || resp.Dates[1] != "2025-02-28" {
		t.Fatalf("unexpected dates: %v", resp.Dates)
	}
}

func TestTemplateHandler_Schedule_BadAsOf(t *testing.T) {
	stub := newTemplateServiceStub()
	stub.previewFn = func(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
		t.Fatal("PreviewSchedule should not be called for bad as_of")
		return nil, errors.New("unreachable")
	}
	handler := NewTemplateHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/templates/tpl-1/schedule?as_of=soon", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Schedule(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
