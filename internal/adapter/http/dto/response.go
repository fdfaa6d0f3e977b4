package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

// TemplateResponse represents a recurrence template in API responses.
type TemplateResponse struct {
	ID                   string          `json:"id"`
	OwnerID              string          `json:"owner_id"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	Kind                 string          `json:"kind"`
	CategoryID           string          `json:"category_id"`
	AccountID            string          `json:"account_id"`
	Frequency            string          `json:"frequency"`
	Interval             int             `json:"interval"`
	StartDate            string          `json:"start_date"`
	EndDate              *string         `json:"end_date,omitempty"`
	LastMaterializedDate *string         `json:"last_materialized_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TemplateFromDomain converts a domain template to a response.
func TemplateFromDomain(t *domain.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:                   t.ID,
		OwnerID:              t.OwnerID,
		Description:          t.Description,
		Amount:               t.Amount,
		Kind:                 string(t.Kind),
		CategoryID:           t.CategoryID,
		AccountID:            t.AccountID,
		Frequency:            string(t.Frequency),
		Interval:             t.Interval,
		StartDate:            domain.FormatDate(t.StartDate),
		EndDate:              formatDatePtr(t.EndDate),
		LastMaterializedDate: formatDatePtr(t.LastMaterializedDate),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// TemplatesFromDomain converts domain templates to responses.
func TemplatesFromDomain(templates []*domain.Template) []*TemplateResponse {
	result := make([]*TemplateResponse, len(templates))
	for i, t := range templates {
		result[i] = TemplateFromDomain(t)
	}
	return result
}

// OccurrenceResponse represents a materialized occurrence in API responses.
type OccurrenceResponse struct {
	ID          string          `json:"id"`
	TemplateID  string          `json:"template_id"`
	OwnerID     string          `json:"owner_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	CategoryID  string          `json:"category_id"`
	AccountID   string          `json:"account_id"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OccurrenceFromDomain converts a domain occurrence to a response.
func OccurrenceFromDomain(o *domain.Occurrence) *OccurrenceResponse {
	return &OccurrenceResponse{
		ID:          o.ID,
		TemplateID:  o.TemplateID,
		OwnerID:     o.OwnerID,
		Date:        domain.FormatDate(o.Date),
		Amount:      o.Amount,
		Kind:        string(o.Kind),
		CategoryID:  o.CategoryID,
		AccountID:   o.AccountID,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

// OccurrencesFromDomain converts domain occurrences to responses.
func OccurrencesFromDomain(occurrences []*domain.Occurrence) []*OccurrenceResponse {
	result := make([]*OccurrenceResponse, len(occurrences))
	for i, o := range occurrences {
		result[i] = OccurrenceFromDomain(o)
	}
	return result
}

// ScheduleResponse represents a schedule preview.
type ScheduleResponse struct {
	TemplateID string   `json:"template_id"`
	AsOf       string   `json:"as_of"`
	Dates      []string `json:"dates"`
}

// ScheduleFromDates builds a schedule preview response.
func ScheduleFromDates(templateID string, asOf time.Time, dates []time.Time) *ScheduleResponse {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = domain.FormatDate(d)
	}
	return &ScheduleResponse{
		TemplateID: templateID,
		AsOf:       domain.FormatDate(asOf),
		Dates:      formatted,
	}
}

// MaterializeResponse represents one template's materialization run.
type MaterializeResponse struct {
	TemplateID string  `json:"template_id"`
	Created    int     `json:"created"`
	Watermark  *string `json:"watermark,omitempty"`
}

// MaterializeFromResult converts a use case result to a response.
func MaterializeFromResult(r *usecase.MaterializeResult) *MaterializeResponse {
	return &MaterializeResponse{
		TemplateID: r.TemplateID,
		Created:    r.Created,
		Watermark:  formatDatePtr(r.Watermark),
	}
}

// TemplateFailureResponse reports one template's failed run in a batch.
type TemplateFailureResponse struct {
	TemplateID string `json:"template_id"`
	Error      string `json:"error"`
}

// BatchMaterializeResponse represents a batch materialization run.
type BatchMaterializeResponse struct {
	Created  int                        `json:"created"`
	Results  []*MaterializeResponse     `json:"results"`
	Failures []*TemplateFailureResponse `json:"failures,omitempty"`
}

// BatchMaterializeFromResult converts a batch result to a response.
func BatchMaterializeFromResult(r *usecase.BatchResult) *BatchMaterializeResponse {
	results := make([]*MaterializeResponse, len(r.Results))
	for i, res := range r.Results {
		results[i] = MaterializeFromResult(res)
	}

	var failures []*TemplateFailureResponse
	for _, f := range r.Failures {
		failures = append(failures, &TemplateFailureResponse{
			TemplateID: f.TemplateID,
			Error:      f.Err.Error(),
		})
	}

	return &BatchMaterializeResponse{
		Created:  r.Created(),
		Results:  results,
		Failures: failures,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(*t)
	return &s
}
