package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvoiceTotalRecomputedOnSave(t *testing.T) {
	invoice := Invoice{
		ConsultationFee: decimal.RequireFromString("500"),
		MedicineCost:    decimal.RequireFromString("200"),
		OtherCharges:    decimal.RequireFromString("0"),
	}
	if err := invoice.BeforeSave(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := invoice.TotalAmount.StringFixed(2); got != "700.00" {
		t.Errorf("total = %s, want 700.00", got)
	}
}

func TestInvoiceTotalOverridesDivergentValue(t *testing.T) {
	invoice := Invoice{
		ConsultationFee: decimal.RequireFromString("100.50"),
		MedicineCost:    decimal.RequireFromString("49.25"),
		OtherCharges:    decimal.RequireFromString("0.25"),
		TotalAmount:     decimal.RequireFromString("9999"),
	}
	if err := invoice.BeforeSave(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := invoice.TotalAmount.StringFixed(2); got != "150.00" {
		t.Errorf("total = %s, want 150.00", got)
	}
}

func TestInvoiceTotalWithZeroComponents(t *testing.T) {
	var invoice Invoice
	if err := invoice.BeforeSave(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := invoice.TotalAmount.StringFixed(2); got != "0.00" {
		t.Errorf("total = %s, want 0.00", got)
	}
}
