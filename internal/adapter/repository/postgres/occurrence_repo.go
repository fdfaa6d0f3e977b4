package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

const pgErrUniqueViolation = "23505"

const occurrenceColumns = `id, template_id, owner_id, occurred_on, amount, kind,
	category_id, account_id, description, created_at`

// OccurrenceRepository implements usecase.OccurrenceRepository.
type OccurrenceRepository struct {
	pool *pgxpool.Pool
}

// NewOccurrenceRepository creates a new OccurrenceRepository.
func NewOccurrenceRepository(pool *pgxpool.Pool) *OccurrenceRepository {
	return &OccurrenceRepository{pool: pool}
}

// Insert creates a new occurrence inside the given transaction. A unique
// violation on (template_id, occurred_on) is reported as
// domain.ErrDuplicateOccurrence so callers can treat the race as handled.
func (r *OccurrenceRepository) Insert(ctx context.Context, tx usecase.Transaction, occurrence *domain.Occurrence) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO occurrences (`+occurrenceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		occurrence.ID,
		occurrence.TemplateID,
		occurrence.OwnerID,
		dateToPgDate(occurrence.Date),
		decimalToNumeric(occurrence.Amount),
		string(occurrence.Kind),
		occurrence.CategoryID,
		occurrence.AccountID,
		occurrence.Description,
		timeToPgTimestamptz(occurrence.CreatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateOccurrence
		}
		return err
	}
	return nil
}

// DatesFor returns the set of persisted occurrence dates for a template from
// a single read inside the transaction.
func (r *OccurrenceRepository) DatesFor(ctx context.Context, tx usecase.Transaction, templateID string) (map[time.Time]struct{}, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, `
		SELECT occurred_on
		FROM occurrences
		WHERE template_id = $1`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make(map[time.Time]struct{})
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates[pgDateToTime(d)] = struct{}{}
	}
	return dates, rows.Err()
}

// ListByTemplate lists a template's occurrences in ascending date order.
func (r *OccurrenceRepository) ListByTemplate(ctx context.Context, templateID string, limit, offset int) ([]*domain.Occurrence, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+occurrenceColumns+`
		FROM occurrences
		WHERE template_id = $1
		ORDER BY occurred_on
		LIMIT $2 OFFSET $3`, templateID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var occurrences []*domain.Occurrence
	for rows.Next() {
		occurrence, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, occurrence)
	}
	return occurrences, rows.Err()
}

// Delete removes one occurrence. The template's watermark is untouched, so
// the materializer never recreates the deleted entry.
func (r *OccurrenceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM occurrences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOccurrenceNotFound
	}
	return nil
}

func scanOccurrence(row pgx.Row) (*domain.Occurrence, error) {
	var (
		occurrence domain.Occurrence
		occurredOn pgtype.Date
		amount     pgtype.Numeric
		kind       string
		createdAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&occurrence.ID,
		&occurrence.TemplateID,
		&occurrence.OwnerID,
		&occurredOn,
		&amount,
		&kind,
		&occurrence.CategoryID,
		&occurrence.AccountID,
		&occurrence.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	occurrence.Date = pgDateToTime(occurredOn)
	occurrence.Amount = numericToDecimal(amount)
	occurrence.Kind = domain.Kind(kind)
	occurrence.CreatedAt = createdAt.Time

	return &occurrence, nil
}
