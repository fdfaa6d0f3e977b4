package usecase

import (
	"context"
	"time"

	"github.com/finflow/finflow/internal/domain"
)

// TemplateRepository defines data access for recurrence templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	// GetByIDForUpdate loads a template with a row lock, serializing
	// materialization runs per template.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Template, error)
	// ListActive returns templates that may still have occurrences to
	// materialize as of the given date.
	ListActive(ctx context.Context, asOf time.Time) ([]*domain.Template, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Template, error)
	SetEndDate(ctx context.Context, id string, endDate, updatedAt time.Time) error
	UpdateWatermark(ctx context.Context, tx Transaction, id string, watermark, updatedAt time.Time) error
}

// OccurrenceRepository defines data access for materialized occurrences.
type OccurrenceRepository interface {
	// Insert fails with domain.ErrDuplicateOccurrence when an occurrence
	// already exists for (TemplateID, Date).
	Insert(ctx context.Context, tx Transaction, occurrence *domain.Occurrence) error
	// DatesFor returns the set of persisted occurrence dates for a template
	// from one consistent read inside the transaction.
	DatesFor(ctx context.Context, tx Transaction, templateID string) (map[time.Time]struct{}, error)
	ListByTemplate(ctx context.Context, templateID string, limit, offset int) ([]*domain.Occurrence, error)
	Delete(ctx context.Context, id string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// RunLocker serializes materialization runs per template across processes.
// It is advisory: the row lock and the store's uniqueness constraint remain
// the correctness guarantees.
type RunLocker interface {
	TryLock(ctx context.Context, templateID string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, templateID string) error
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
