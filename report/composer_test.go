package report

import (
	"MediDesk/models"
	"MediDesk/services"
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleAppointment() *models.Appointment {
	patientID := uint(1)
	return &models.Appointment{
		ID:           4,
		PatientID:    &patientID,
		TokenNumber:  1003,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:         "10:30",
		Status:       models.StatusPending,
		Description:  "persistent cough",
		Patient:      &models.Patient{ID: patientID, Name: "Asha", Age: 30, Gender: "Female", Phone: "5550100"},
		Department:   models.Department{Name: "General Medicine"},
		Doctor:       models.Doctor{Name: "Dr. Iyer"},
		DepartmentID: 1,
		DoctorID:     2,
	}
}

func TestCompose_FullSummary(t *testing.T) {
	summary := &services.AppointmentSummary{
		Appointment: sampleAppointment(),
		Invoice: &models.Invoice{
			ConsultationFee: decimal.NewFromInt(500),
			MedicineCost:    decimal.NewFromInt(200),
			TotalAmount:     decimal.NewFromInt(700),
			DateIssued:      time.Now(),
		},
		Prescription: &models.Prescription{
			Diagnosis:  "bronchitis",
			Medicines:  "amoxicillin 500mg",
			DateIssued: time.Now(),
		},
	}

	out, err := Compose(summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestCompose_OrphanedAppointment(t *testing.T) {
	appointment := sampleAppointment()
	appointment.Patient = nil
	appointment.PatientID = nil

	out, err := Compose(&services.AppointmentSummary{Appointment: appointment})
	if err != nil {
		t.Fatalf("unexpected error for appointment without patient: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestCompose_OmitsMissingSections(t *testing.T) {
	withInvoice := &services.AppointmentSummary{
		Appointment: sampleAppointment(),
		Invoice:     &models.Invoice{DateIssued: time.Now()},
	}
	bare := &services.AppointmentSummary{Appointment: sampleAppointment()}

	a, err := Compose(withInvoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compose(bare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) <= len(b) {
		t.Error("expected the invoice section to add content to the document")
	}
}
