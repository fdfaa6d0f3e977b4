package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

const templateColumns = `id, owner_id, description, amount, kind, category_id, account_id,
	frequency, recur_interval, start_date, end_date, last_materialized_date, created_at, updated_at`

// TemplateRepository implements usecase.TemplateRepository.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

// Create creates a new template.
func (r *TemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO recurrence_templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		template.ID,
		template.OwnerID,
		template.Description,
		decimalToNumeric(template.Amount),
		string(template.Kind),
		template.CategoryID,
		template.AccountID,
		string(template.Frequency),
		template.Interval,
		dateToPgDate(template.StartDate),
		datePtrToPgDate(template.EndDate),
		datePtrToPgDate(template.LastMaterializedDate),
		timeToPgTimestamptz(template.CreatedAt),
		timeToPgTimestamptz(template.UpdatedAt),
	)
	return err
}

// GetByID retrieves a template by ID.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM recurrence_templates
		WHERE id = $1`, id)

	return scanTemplate(row)
}

// GetByIDForUpdate retrieves a template with a FOR UPDATE row lock,
// serializing materialization runs on the same template.
func (r *TemplateRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Template, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM recurrence_templates
		WHERE id = $1
		FOR UPDATE`, id)

	return scanTemplate(row)
}

// ListActive returns templates that may still have occurrences to
// materialize as of the given date: started, and either open-ended or not
// yet caught up to their end date.
func (r *TemplateRepository) ListActive(ctx context.Context, asOf time.Time) ([]*domain.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM recurrence_templates
		WHERE start_date <= $1
		  AND (end_date IS NULL
		       OR last_materialized_date IS NULL
		       OR last_materialized_date < end_date)
		ORDER BY id`, dateToPgDate(asOf))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// ListByOwner lists an owner's templates with pagination.
func (r *TemplateRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Template, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM recurrence_templates
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// SetEndDate sets the template's inclusive end date.
func (r *TemplateRepository) SetEndDate(ctx context.Context, id string, endDate, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE recurrence_templates
		SET end_date = $2, updated_at = $3
		WHERE id = $1`,
		id, dateToPgDate(endDate), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

// UpdateWatermark advances the template's last materialized date. The
// GREATEST guard keeps the watermark monotonic even under races.
func (r *TemplateRepository) UpdateWatermark(ctx context.Context, tx usecase.Transaction, id string, watermark, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE recurrence_templates
		SET last_materialized_date = GREATEST(COALESCE(last_materialized_date, $2::date), $2::date),
		    updated_at = $3
		WHERE id = $1`,
		id, dateToPgDate(watermark), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var (
		template  domain.Template
		amount    pgtype.Numeric
		kind      string
		frequency string
		startDate pgtype.Date
		endDate   pgtype.Date
		watermark pgtype.Date
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&template.ID,
		&template.OwnerID,
		&template.Description,
		&amount,
		&kind,
		&template.CategoryID,
		&template.AccountID,
		&frequency,
		&template.Interval,
		&startDate,
		&endDate,
		&watermark,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}

	template.Amount = numericToDecimal(amount)
	template.Kind = domain.Kind(kind)
	template.Frequency = domain.Frequency(frequency)
	template.StartDate = pgDateToTime(startDate)
	template.EndDate = pgDateToTimePtr(endDate)
	template.LastMaterializedDate = pgDateToTimePtr(watermark)
	template.CreatedAt = createdAt.Time
	template.UpdatedAt = updatedAt.Time

	return &template, nil
}

func scanTemplates(rows pgx.Rows) ([]*domain.Template, error) {
	var templates []*domain.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}
