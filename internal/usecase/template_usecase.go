package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/finflow/internal/domain"
)

// TemplateUseCase handles recurrence template lifecycle. The schedule shape
// (frequency, interval, start date) is immutable after creation; changing it
// means creating a new template.
type TemplateUseCase struct {
	templateRepo TemplateRepository
	idGen        IDGenerator
}

// NewTemplateUseCase creates a new TemplateUseCase.
func NewTemplateUseCase(templateRepo TemplateRepository, idGen IDGenerator) *TemplateUseCase {
	return &TemplateUseCase{
		templateRepo: templateRepo,
		idGen:        idGen,
	}
}

// CreateTemplateInput represents input for creating a template.
type CreateTemplateInput struct {
	OwnerID     string
	Description string
	Amount      decimal.Decimal
	Kind        domain.Kind
	CategoryID  string
	AccountID   string
	Frequency   domain.Frequency
	Interval    int
	StartDate   time.Time
	EndDate     *time.Time
}

// CreateTemplate validates and persists a new recurrence template.
func (uc *TemplateUseCase) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.Template, error) {
	now := time.Now().UTC()

	var endDate *time.Time
	if input.EndDate != nil {
		e := domain.DateOf(*input.EndDate)
		endDate = &e
	}

	template := &domain.Template{
		ID:          uc.idGen.Generate(),
		OwnerID:     input.OwnerID,
		Description: input.Description,
		Amount:      input.Amount,
		Kind:        input.Kind,
		CategoryID:  input.CategoryID,
		AccountID:   input.AccountID,
		Frequency:   input.Frequency,
		Interval:    input.Interval,
		StartDate:   domain.DateOf(input.StartDate),
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := template.Validate(); err != nil {
		return nil, err
	}

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// GetTemplate retrieves a template by ID.
func (uc *TemplateUseCase) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	return uc.templateRepo.GetByID(ctx, id)
}

// ListTemplatesInput represents input for listing an owner's templates.
type ListTemplatesInput struct {
	OwnerID string
	Limit   int
	Offset  int
}

// ListTemplates lists an owner's templates with pagination.
func (uc *TemplateUseCase) ListTemplates(ctx context.Context, input ListTemplatesInput) ([]*domain.Template, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.templateRepo.ListByOwner(ctx, input.OwnerID, input.Limit, input.Offset)
}

// EndTemplate sets the template's inclusive end date. The end date may not
// precede the start date or the current watermark.
func (uc *TemplateUseCase) EndTemplate(ctx context.Context, id string, endDate time.Time) (*domain.Template, error) {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	endDate = domain.DateOf(endDate)
	if endDate.Before(template.StartDate) {
		return nil, domain.ErrEndBeforeStart
	}
	if template.LastMaterializedDate != nil && endDate.Before(*template.LastMaterializedDate) {
		return nil, domain.ErrEndBeforeWatermark
	}

	now := time.Now().UTC()
	if err := uc.templateRepo.SetEndDate(ctx, id, endDate, now); err != nil {
		return nil, err
	}

	template.EndDate = &endDate
	template.UpdatedAt = now
	return template, nil
}

// PreviewSchedule computes the occurrence dates a template would generate
// through horizon, without touching the occurrence store.
func (uc *TemplateUseCase) PreviewSchedule(ctx context.Context, id string, horizon time.Time) ([]time.Time, error) {
	template, err := uc.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule, err := template.Schedule(horizon)
	if err != nil {
		return nil, err
	}

	return schedule.Dates(), nil
}
