package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finflow/finflow/internal/adapter/http/dto"
	"github.com/finflow/finflow/internal/infrastructure/metrics"
	"github.com/finflow/finflow/internal/usecase"
)

// MaterializeService defines the behavior needed by MaterializeHandler.
type MaterializeService interface {
	Materialize(ctx context.Context, templateID string, horizon time.Time) (*usecase.MaterializeResult, error)
	MaterializeAll(ctx context.Context, horizon time.Time) (*usecase.BatchResult, error)
}

// MaterializeHandler handles materialization HTTP requests.
type MaterializeHandler struct {
	materializeUC MaterializeService
	metrics       *metrics.Metrics
}

// NewMaterializeHandler creates a new MaterializeHandler.
func NewMaterializeHandler(materializeUC MaterializeService, m *metrics.Metrics) *MaterializeHandler {
	return &MaterializeHandler{
		materializeUC: materializeUC,
		metrics:       m,
	}
}

// Materialize materializes one template's occurrences through as_of.
func (h *MaterializeHandler) Materialize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing template ID", "")
		return
	}

	req, ok := h.decodeMaterializeRequest(w, r)
	if !ok {
		return
	}

	asOf, err := req.ParseAsOf(time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()
	result, err := h.materializeUC.Materialize(r.Context(), id, asOf)
	if err != nil {
		h.observeRun("error", start, 0)
		status := mapDomainError(err)
		writeError(w, status, "failed to materialize template", err.Error())
		return
	}
	h.observeRun("ok", start, result.Created)

	writeJSON(w, http.StatusOK, dto.MaterializeFromResult(result))
}

// MaterializeAll materializes every active template through as_of.
func (h *MaterializeHandler) MaterializeAll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMaterializeRequest(w, r)
	if !ok {
		return
	}

	asOf, err := req.ParseAsOf(time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()
	batch, err := h.materializeUC.MaterializeAll(r.Context(), asOf)
	if err != nil {
		h.observeRun("error", start, 0)
		writeError(w, http.StatusInternalServerError, "failed to materialize templates", err.Error())
		return
	}
	h.observeRun("ok", start, batch.Created())
	if h.metrics != nil {
		h.metrics.BatchTemplatesSelected.Observe(float64(len(batch.Results) + len(batch.Failures)))
	}

	// Partial failures still produce a usable report; the status code says
	// the batch itself ran.
	writeJSON(w, http.StatusOK, dto.BatchMaterializeFromResult(batch))
}

// decodeMaterializeRequest reads the optional request body. An empty body
// means "materialize through today".
func (h *MaterializeHandler) decodeMaterializeRequest(w http.ResponseWriter, r *http.Request) (dto.MaterializeRequest, bool) {
	var req dto.MaterializeRequest
	if r.Body == nil || r.ContentLength == 0 {
		return req, true
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return req, false
	}
	return req, true
}

func (h *MaterializeHandler) observeRun(status string, start time.Time, created int) {
	if h.metrics == nil {
		return
	}
	h.metrics.MaterializationRuns.WithLabelValues(status).Inc()
	h.metrics.MaterializationTime.Observe(time.Since(start).Seconds())
	if created > 0 {
		h.metrics.OccurrencesCreated.Add(float64(created))
	}
}
