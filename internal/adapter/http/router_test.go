package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finflow/finflow/internal/adapter/http/handler"
	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

type templateServiceStub struct{}

func (s *templateServiceStub) CreateTemplate(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error) {
	return nil, nil
}

func (s *templateServiceStub) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	return &domain.Template{ID: id, StartDate: domain.Date(2025, 1, 1)}, nil
}

func (s *templateServiceStub) ListTemplates(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error) {
	return nil, nil
}

func (s *templateServiceStub) EndTemplate(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
	return nil, nil
}

func (s *templateServiceStub) PreviewSchedule(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
	return nil, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		TemplateHandler:    handler.NewTemplateHandler(&templateServiceStub{}),
		MaterializeHandler: handler.NewMaterializeHandler(nil, nil),
		OccurrenceHandler:  handler.NewOccurrenceHandler(nil, nil),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		Logger:             zerolog.Nop(),
	})
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_TemplateGetRouted(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/tpl-1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tpl-1" {
		t.Fatalf("expected path param to reach the handler, got %q", resp.ID)
	}
}
