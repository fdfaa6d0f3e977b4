package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finflow/finflow/internal/domain"
)

func TestCreateTemplateRequestToUseCaseInput(t *testing.T) {
	end := "2025-12-31"
	req := &CreateTemplateRequest{
		OwnerID:     "owner-1",
		Description: "rent",
		Amount:      decimal.NewFromInt(1200),
		Kind:        "expense",
		CategoryID:  "cat-1",
		AccountID:   "acc-1",
		Frequency:   "monthly",
		Interval:    1,
		StartDate:   "2025-01-31",
		EndDate:     &end,
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.StartDate != domain.Date(2025, 1, 31) {
		t.Fatalf("unexpected start date: %v", input.StartDate)
	}
	if input.EndDate == nil || *input.EndDate != domain.Date(2025, 12, 31) {
		t.Fatalf("unexpected end date: %v", input.EndDate)
	}
	if input.Frequency != domain.FrequencyMonthly {
		t.Fatalf("unexpected frequency: %v", input.Frequency)
	}
	if input.Kind != domain.KindExpense {
		t.Fatalf("unexpected kind: %v", input.Kind)
	}
}

func TestCreateTemplateRequestRejectsBadDates(t *testing.T) {
	req := &CreateTemplateRequest{StartDate: "31-01-2025"}
	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatal("expected error for malformed start_date")
	}

	bad := "not-a-date"
	req = &CreateTemplateRequest{StartDate: "2025-01-31", EndDate: &bad}
	if _, err := req.ToUseCaseInput(); err == nil {
		t.Fatal("expected error for malformed end_date")
	}
}

func TestMaterializeRequestParseAsOf(t *testing.T) {
	now := domain.Date(2025, 6, 15)

	req := &MaterializeRequest{}
	asOf, err := req.ParseAsOf(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asOf != now {
		t.Fatalf("expected default to now, got %v", asOf)
	}

	req = &MaterializeRequest{AsOf: "2025-07-01"}
	asOf, err = req.ParseAsOf(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asOf != domain.Date(2025, 7, 1) {
		t.Fatalf("unexpected as_of: %v", asOf)
	}

	req = &MaterializeRequest{AsOf: "soon"}
	if _, err := req.ParseAsOf(now); err == nil {
		t.Fatal("expected error for malformed as_of")
	}
}
