package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finflow/finflow/internal/adapter/http/dto"
	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

type materializeServiceStub struct {
	materializeFn    func(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error)
	materializeAllFn func(ctx context.Context, horizon time.Time) (*usecase.BatchResult, error)
}

func (s *materializeServiceStub) Materialize(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error) {
	return s.materializeFn(ctx, templateID, horizon)
}

func (s *materializeServiceStub) MaterializeAll(ctx context.Context, horizon time.Time) (*usecase.BatchResult, error) {
	return s.materializeAllFn(ctx, horizon)
}

func TestMaterializeHandler_Materialize(t *testing.T) {
	watermark := domain.Date(2025, 3, 1)
	stub := &materializeServiceStub{
		materializeFn: func(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error) {
			if templateID != "tpl-1" {
				t.Fatalf("expected tpl-1, got %s", templateID)
			}
			if horizon != domain.Date(2025, 3, 1) {
				t.Fatalf("unexpected horizon: %v", horizon)
			}
			return &usecase.MaterializeResult{TemplateID: templateID, Created: 3, Watermark: &watermark}, nil
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	body, _ := json.Marshal(dto.MaterializeRequest{AsOf: "2025-03-01"})
	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/materialize", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Materialize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.MaterializeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Created != 3 {
		t.Fatalf("expected 3 created, got %d", resp.Created)
	}
	if resp.Watermark == nil || *resp.Watermark != "2025-03-01" {
		t.Fatalf("unexpected watermark: %v", resp.Watermark)
	}
}

func TestMaterializeHandler_Materialize_EmptyBodyDefaultsToToday(t *testing.T) {
	var horizonSeen time.Time
	stub := &materializeServiceStub{
		materializeFn: func(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error) {
			horizonSeen = horizon
			return &usecase.MaterializeResult{TemplateID: templateID}, nil
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/materialize", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Materialize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if horizonSeen != domain.DateOf(time.Now().UTC()) {
		t.Fatalf("expected horizon to default to today, got %v", horizonSeen)
	}
}

func TestMaterializeHandler_Materialize_Conflict(t *testing.T) {
	stub := &materializeServiceStub{
		materializeFn: func(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error) {
			return nil, domain.ErrRunInProgress
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/materialize", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Materialize(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMaterializeHandler_Materialize_NotFound(t *testing.T) {
	stub := &materializeServiceStub{
		materializeFn: func(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error) {
			return nil, domain.ErrTemplateNotFound
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/templates/tpl-1/materialize", nil)
	req = setChiURLParam(req, "id", "tpl-1")
	rec := httptest.NewRecorder()

	handler.Materialize(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMaterializeHandler_MaterializeAll_ReportsPartialFailure(t *testing.T) {
	stub := &materializeServiceStub{
		materializeAllFn: func(ctx context.Context, horizon time.Time) (*usecase.BatchResult, error) {
			return &usecase.BatchResult{
				Results: []*usecase.MaterializeResult{
					{TemplateID: "tpl-1", Created: 2},
				},
				Failures: []usecase.TemplateFailure{
					{TemplateID: "tpl-2", Err: domain.ErrRunInProgress},
				},
			}, nil
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	body, _ := json.Marshal(dto.MaterializeRequest{AsOf: "2025-03-01"})
	req := httptest.NewRequest(http.MethodPost, "/materializations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.MaterializeAll(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.BatchMaterializeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Created != 2 {
		t.Fatalf("expected 2 created, got %d", resp.Created)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].TemplateID != "tpl-2" {
		t.Fatalf("unexpected failures: %+v", resp.Failures)
	}
}

func TestMaterializeHandler_MaterializeAll_BadAsOf(t *testing.T) {
	stub := &materializeServiceStub{
		materializeAllFn: func(ctx context.Context, horizon time.Time) (*usecase.BatchResult, error) {
			t.Fatal("MaterializeAll should not be called for bad as_of")
			return nil, nil
		},
	}
	handler := NewMaterializeHandler(stub, nil)

	body, _ := json.Marshal(dto.MaterializeRequest{AsOf: "later"})
	req := httptest.NewRequest(http.MethodPost, "/materializations", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.MaterializeAll(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
