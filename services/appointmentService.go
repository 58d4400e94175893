package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
)

// AppointmentSummary bundles an appointment with its optional invoice and
// prescription for the retrieval views and the PDF report.
type AppointmentSummary struct {
	Appointment  *models.Appointment  `json:"appointment"`
	Invoice      *models.Invoice      `json:"invoice,omitempty"`
	Prescription *models.Prescription `json:"prescription,omitempty"`
}

type AppointmentService struct {
	appointments  *repositories.AppointmentRepository
	invoices      *repositories.InvoiceRepository
	prescriptions *repositories.PrescriptionRepository
}

func NewAppointmentService(
	appointments *repositories.AppointmentRepository,
	invoices *repositories.InvoiceRepository,
	prescriptions *repositories.PrescriptionRepository,
) *AppointmentService {
	return &AppointmentService{
		appointments:  appointments,
		invoices:      invoices,
		prescriptions: prescriptions,
	}
}

// FindByToken resolves user-supplied token text to an appointment.
// Malformed text yields ErrInvalidToken; a well-formed token with no
// matching appointment yields ErrAppointmentNotFound.
func (s *AppointmentService) FindByToken(ctx context.Context, token string) (*models.Appointment, error) {
	number, err := utils.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return s.appointments.GetByToken(ctx, number)
}

// SummaryByToken resolves a token to the appointment together with its
// invoice and prescription, either of which may be absent.
func (s *AppointmentService) SummaryByToken(ctx context.Context, token string) (*AppointmentSummary, error) {
	appointment, err := s.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, appointment)
}

// SummaryByID is the internal-id variant used by PDF generation once the
// token has been resolved.
func (s *AppointmentService) SummaryByID(ctx context.Context, id uint) (*AppointmentSummary, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, appointment)
}

func (s *AppointmentService) summarize(ctx context.Context, appointment *models.Appointment) (*AppointmentSummary, error) {
	invoice, err := s.invoices.GetByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	prescription, err := s.prescriptions.GetByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	return &AppointmentSummary{
		Appointment:  appointment,
		Invoice:      invoice,
		Prescription: prescription,
	}, nil
}

func (s *AppointmentService) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Cancel transitions the appointment to Cancelled; the second return value
// reports when it already was.
func (s *AppointmentService) Cancel(ctx context.Context, id uint) (*models.Appointment, bool, error) {
	return s.appointments.Cancel(ctx, id)
}

// Update applies a staff edit, including the administrative Confirmed
// mutation.
func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.appointments.Update(ctx, appointment)
}
