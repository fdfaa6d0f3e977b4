package domain

import "errors"

var (
	// Template errors
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidInterval    = errors.New("interval must be at least 1")
	ErrEndBeforeStart     = errors.New("end date is before start date")
	ErrUnknownFrequency   = errors.New("unknown frequency")
	ErrInvalidAmount      = errors.New("amount must not be zero")
	ErrUnknownKind        = errors.New("unknown transaction kind")
	ErrEndBeforeWatermark = errors.New("end date is before last materialized date")

	// Occurrence errors
	ErrDuplicateOccurrence = errors.New("occurrence already exists for this date")
	ErrOccurrenceNotFound  = errors.New("occurrence not found")

	// Materialization errors
	ErrRunInProgress = errors.New("materialization already running for template")
)

// IsInvalidTemplate reports whether err belongs to the template validation
// family: the template can never be materialized until its definition changes.
func IsInvalidTemplate(err error) bool {
	return errors.Is(err, ErrInvalidInterval) ||
		errors.Is(err, ErrEndBeforeStart) ||
		errors.Is(err, ErrUnknownFrequency) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrUnknownKind)
}
