package report

import (
	"MediDesk/models"
	"MediDesk/services"
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	hospitalName = "MediDesk Hospital"
	closingLine  = "We wish you a speedy recovery! Get well soon and take care of your health."
	notAvailable = "N/A"
)

// Compose renders the printable appointment summary as a PDF byte stream.
// It performs no business logic: the summary is already resolved and
// validated, and sections for the invoice and prescription appear only
// when those records exist.
func Compose(summary *services.AppointmentSummary) ([]byte, error) {
	appointment := summary.Appointment

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, hospitalName, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Token Number: %d", appointment.TokenNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, "Appointment Date: "+appointment.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	writePatientSection(pdf, appointment.Patient)
	writeAppointmentSection(pdf, appointment)

	if summary.Invoice != nil {
		writeInvoiceSection(pdf, summary.Invoice)
	}
	if summary.Prescription != nil {
		writePrescriptionSection(pdf, summary.Prescription)
	}

	pdf.SetFont("Arial", "I", 14)
	pdf.MultiCell(0, 8, closingLine, "", "L", false)

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buffer.Bytes(), nil
}

func writePatientSection(pdf *gofpdf.Fpdf, patient *models.Patient) {
	name, age, gender, phone, address := notAvailable, notAvailable, notAvailable, notAvailable, notAvailable
	if patient != nil {
		name = patient.Name
		age = fmt.Sprintf("%d", patient.Age)
		gender = patient.Gender
		phone = patient.Phone
		address = orPlaceholder(patient.Address)
	}

	writeHeading(pdf, "Patient Details:")
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Name: %s\nAge: %s\nGender: %s\nPhone: %s\nAddress: %s",
		name, age, gender, phone, address,
	), "", "L", false)
	pdf.Ln(3)
}

func writeAppointmentSection(pdf *gofpdf.Fpdf, appointment *models.Appointment) {
	writeHeading(pdf, "Appointment Details:")
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Doctor: %s\nDepartment: %s\nTime: %s\nStatus: %s\nDescription: %s",
		appointment.Doctor.Name,
		appointment.Department.Name,
		appointment.Time,
		appointment.Status,
		orPlaceholder(appointment.Description),
	), "", "L", false)
	pdf.Ln(3)
}

func writeInvoiceSection(pdf *gofpdf.Fpdf, invoice *models.Invoice) {
	writeHeading(pdf, "Invoice Details:")
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Consultation Fee: %s\nMedicine Cost: %s\nOther Charges: %s\nTotal Amount: %s\nDate Issued: %s",
		invoice.ConsultationFee.StringFixed(2),
		invoice.MedicineCost.StringFixed(2),
		invoice.OtherCharges.StringFixed(2),
		invoice.TotalAmount.StringFixed(2),
		invoice.DateIssued.Format("2006-01-02 15:04"),
	), "", "L", false)
	pdf.Ln(3)
}

func writePrescriptionSection(pdf *gofpdf.Fpdf, prescription *models.Prescription) {
	writeHeading(pdf, "Prescription Details:")
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Diagnosis: %s\nMedicines: %s\nAdvice: %s\nDate Issued: %s",
		orPlaceholder(prescription.Diagnosis),
		orPlaceholder(prescription.Medicines),
		orPlaceholder(prescription.Advice),
		prescription.DateIssued.Format("2006-01-02 15:04"),
	), "", "L", false)
	pdf.Ln(3)
}

func writeHeading(pdf *gofpdf.Fpdf, heading string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
}

func orPlaceholder(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
