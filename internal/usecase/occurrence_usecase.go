package usecase

import (
	"context"

	"github.com/finflow/finflow/internal/domain"
)

// OccurrenceUseCase handles materialized occurrence queries and user
// deletions. Deleting an occurrence never lowers the template's watermark,
// so a deleted entry is not regenerated by later runs.
type OccurrenceUseCase struct {
	occurrenceRepo OccurrenceRepository
}

// NewOccurrenceUseCase creates a new OccurrenceUseCase.
func NewOccurrenceUseCase(occurrenceRepo OccurrenceRepository) *OccurrenceUseCase {
	return &OccurrenceUseCase{occurrenceRepo: occurrenceRepo}
}

// ListOccurrencesInput represents input for listing a template's occurrences.
type ListOccurrencesInput struct {
	TemplateID string
	Limit      int
	Offset     int
}

// ListByTemplate lists a template's occurrences with pagination.
func (uc *OccurrenceUseCase) ListByTemplate(ctx context.Context, input ListOccurrencesInput) ([]*domain.Occurrence, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.occurrenceRepo.ListByTemplate(ctx, input.TemplateID, input.Limit, input.Offset)
}

// DeleteOccurrence removes one materialized ledger entry.
func (uc *OccurrenceUseCase) DeleteOccurrence(ctx context.Context, id string) error {
	return uc.occurrenceRepo.Delete(ctx, id)
}
