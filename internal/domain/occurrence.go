package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occurrence is one concrete, dated ledger entry materialized from a
// template. At most one occurrence exists per (TemplateID, Date); the store
// enforces this with a uniqueness constraint.
type Occurrence struct {
	ID          string
	TemplateID  string
	OwnerID     string
	Date        time.Time
	Amount      decimal.Decimal
	Kind        Kind
	CategoryID  string
	AccountID   string
	Description string
	CreatedAt   time.Time
}
