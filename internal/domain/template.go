package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the calendar unit a template recurs in.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Template is the stored definition of a recurring transaction: its schedule
// shape plus the payload copied onto every materialized occurrence. The
// schedule shape (frequency, interval, start date) is immutable after
// creation; only ending the template and advancing the watermark mutate it.
type Template struct {
	ID          string
	OwnerID     string
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	CategoryID  string
	AccountID   string
	Frequency   Frequency
	Interval    int
	StartDate   time.Time
	// EndDate is the inclusive upper bound of the schedule, nil when open-ended.
	EndDate *time.Time
	// LastMaterializedDate is the watermark: the latest date through which
	// occurrences are known to be fully materialized. Monotonic.
	LastMaterializedDate *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate checks the schedule-shape invariants.
func (t *Template) Validate() error {
	if !t.Frequency.Valid() {
		return ErrUnknownFrequency
	}
	if t.Interval < 1 {
		return ErrInvalidInterval
	}
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return ErrEndBeforeStart
	}
	if !t.Kind.Valid() {
		return ErrUnknownKind
	}
	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}
	return nil
}

// Ended reports whether the template's end date has passed as of the given date.
func (t *Template) Ended(asOf time.Time) bool {
	return t.EndDate != nil && t.EndDate.Before(DateOf(asOf))
}

// OccurrenceOn derives the concrete occurrence this template implies on date.
func (t *Template) OccurrenceOn(id string, date, now time.Time) *Occurrence {
	return &Occurrence{
		ID:          id,
		TemplateID:  t.ID,
		OwnerID:     t.OwnerID,
		Date:        DateOf(date),
		Amount:      t.Amount,
		Kind:        t.Kind,
		CategoryID:  t.CategoryID,
		AccountID:   t.AccountID,
		Description: t.Description,
		CreatedAt:   now,
	}
}
