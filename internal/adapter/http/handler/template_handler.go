package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finflow/finflow/internal/adapter/http/dto"
	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

// TemplateService defines the behavior needed by TemplateHandler.
type TemplateService interface {
	CreateTemplate(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error)
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)
	ListTemplates(ctx context.Context, input usecase.ListTemplatesInput) ([]*domain.Template, error)
	EndTemplate(ctx context.Context, id string, endDate time.Time) (*domain.Template, error)
	PreviewSchedule(ctx context.Context, id string, horizon time.Time) ([]time.Time, error)
}

// TemplateHandler handles template-related HTTP requests.
type TemplateHandler struct {
	templateUC TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateUC TemplateService) *TemplateHandler {
	return &TemplateHandler{templateUC: templateUC}
}

// Create creates a new recurrence template.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	template, err := h.templateUC.CreateTemplate(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create template", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TemplateFromDomain(template))
}

// Get retrieves a template by ID.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing template ID", "")
		return
	}

	template, err := h.templateUC.GetTemplate(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get template", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TemplateFromDomain(template))
}

// List lists an owner's templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		writeError(w, http.StatusBadRequest, "missing owner_id", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	templates, err := h.templateUC.ListTemplates(r.Context(), usecase.ListTemplatesInput{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list templates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TemplatesFromDomain(templates))
}

// End sets the template's inclusive end date.
func (h *TemplateHandler) End(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing template ID", "")
		return
	}

	var req dto.EndTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	endDate, err := req.ParseEndDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	template, err := h.templateUC.EndTemplate(r.Context(), id, endDate)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to end template", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TemplateFromDomain(template))
}

// Schedule previews the occurrence dates a template implies through as_of.
func (h *TemplateHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing template ID", "")
		return
	}

	asOf := domain.DateOf(time.Now().UTC())
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid as_of", err.Error())
			return
		}
		asOf = parsed
	}

	dates, err := h.templateUC.PreviewSchedule(r.Context(), id, asOf)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to preview schedule", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ScheduleFromDates(id, asOf, dates))
}
