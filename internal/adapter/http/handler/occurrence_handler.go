package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finflow/finflow/internal/adapter/http/dto"
	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/infrastructure/metrics"
	"github.com/finflow/finflow/internal/usecase"
)

// OccurrenceService defines the behavior needed by OccurrenceHandler.
type OccurrenceService interface {
	ListByTemplate(ctx context.Context, input usecase.ListOccurrencesInput) ([]*domain.Occurrence, error)
	DeleteOccurrence(ctx context.Context, id string) error
}

// OccurrenceHandler handles occurrence-related HTTP requests.
type OccurrenceHandler struct {
	occurrenceUC OccurrenceService
	metrics      *metrics.Metrics
}

// NewOccurrenceHandler creates a new OccurrenceHandler.
func NewOccurrenceHandler(occurrenceUC OccurrenceService, m *metrics.Metrics) *OccurrenceHandler {
	return &OccurrenceHandler{
		occurrenceUC: occurrenceUC,
		metrics:      m,
	}
}

// ListByTemplate lists a template's materialized occurrences.
func (h *OccurrenceHandler) ListByTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing template ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	occurrences, err := h.occurrenceUC.ListByTemplate(r.Context(), usecase.ListOccurrencesInput{
		TemplateID: id,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list occurrences", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OccurrencesFromDomain(occurrences))
}

// Delete removes one materialized occurrence. The template's watermark is
// untouched, so the entry is not recreated by later materialization runs.
func (h *OccurrenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing occurrence ID", "")
		return
	}

	if err := h.occurrenceUC.DeleteOccurrence(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete occurrence", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.OccurrencesDeleted.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}
