package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

// CreateTemplateRequest represents a request to create a recurrence template.
// Dates are calendar dates in YYYY-MM-DD form.
type CreateTemplateRequest struct {
	OwnerID     string          `json:"owner_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	CategoryID  string          `json:"category_id"`
	AccountID   string          `json:"account_id"`
	Frequency   string          `json:"frequency"`
	Interval    int             `json:"interval"`
	StartDate   string          `json:"start_date"`
	EndDate     *string         `json:"end_date,omitempty"`
}

// ToUseCaseInput converts to use case input, parsing the date fields.
func (r *CreateTemplateRequest) ToUseCaseInput() (usecase.CreateTemplateInput, error) {
	startDate, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return usecase.CreateTemplateInput{}, fmt.Errorf("start_date: %w", err)
	}

	var endDate *time.Time
	if r.EndDate != nil {
		e, err := domain.ParseDate(*r.EndDate)
		if err != nil {
			return usecase.CreateTemplateInput{}, fmt.Errorf("end_date: %w", err)
		}
		endDate = &e
	}

	return usecase.CreateTemplateInput{
		OwnerID:     r.OwnerID,
		Description: r.Description,
		Amount:      r.Amount,
		Kind:        domain.Kind(r.Kind),
		CategoryID:  r.CategoryID,
		AccountID:   r.AccountID,
		Frequency:   domain.Frequency(r.Frequency),
		Interval:    r.Interval,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

// EndTemplateRequest represents a request to end a template.
type EndTemplateRequest struct {
	EndDate string `json:"end_date"`
}

// ParseEndDate parses the end date field.
func (r *EndTemplateRequest) ParseEndDate() (time.Time, error) {
	endDate, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	return endDate, nil
}

// MaterializeRequest represents a request to materialize occurrences
// through a horizon date. An empty as_of defaults to today.
type MaterializeRequest struct {
	AsOf string `json:"as_of,omitempty"`
}

// ParseAsOf parses the horizon date, defaulting to the given now.
func (r *MaterializeRequest) ParseAsOf(now time.Time) (time.Time, error) {
	if r.AsOf == "" {
		return domain.DateOf(now), nil
	}
	asOf, err := domain.ParseDate(r.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("as_of: %w", err)
	}
	return asOf, nil
}
