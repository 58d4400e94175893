package utils

import (
	"MediDesk/models"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1000", 1000, false},
		{"0", 0, false},
		{"1024", 1024, false},
		{"", 0, true},
		{"12a4", 0, true},
		{"-1000", 0, true},
		{"10.5", 0, true},
		{" 1000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseToken(tt.input)
		if tt.wantErr {
			if !errors.Is(err, models.ErrInvalidToken) {
				t.Errorf("ParseToken(%q) error = %v, want ErrInvalidToken", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseToken(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseToken(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestValidateCallbackRequest(t *testing.T) {
	valid := models.CallbackRequest{Name: "Asha", Phone: "5550100", PreferredTime: "morning"}
	if err := ValidateCallbackRequest(valid); err != nil {
		t.Errorf("unexpected error for valid request: %v", err)
	}

	missingPhone := models.CallbackRequest{Name: "Asha", PreferredTime: "morning"}
	if err := ValidateCallbackRequest(missingPhone); err == nil {
		t.Error("expected error when phone is empty")
	}

	missingTime := models.CallbackRequest{Name: "Asha", Phone: "5550100"}
	if err := ValidateCallbackRequest(missingTime); err == nil {
		t.Error("expected error when preferred time is empty")
	}
}

func TestValidateInvoiceAmounts(t *testing.T) {
	ok := models.Invoice{
		ConsultationFee: decimal.NewFromInt(500),
		MedicineCost:    decimal.NewFromInt(200),
	}
	if err := ValidateInvoiceAmounts(ok); err != nil {
		t.Errorf("unexpected error for non-negative amounts: %v", err)
	}

	negative := models.Invoice{
		ConsultationFee: decimal.NewFromInt(500),
		OtherCharges:    decimal.NewFromInt(-1),
	}
	if err := ValidateInvoiceAmounts(negative); err == nil {
		t.Error("expected error for negative other_charges")
	}
}

func TestValidateDoctor(t *testing.T) {
	doctor := models.Doctor{
		Name:           "Dr. Iyer",
		Specialization: "Cardiology",
		DepartmentID:   2,
		Email:          "iyer@example.com",
		Experience:     12,
	}
	if err := ValidateDoctor(doctor); err != nil {
		t.Errorf("unexpected error for valid doctor: %v", err)
	}

	doctor.Email = "not-an-email"
	if err := ValidateDoctor(doctor); err == nil {
		t.Error("expected error for malformed email")
	}
}
