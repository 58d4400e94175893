package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/report"
	"MediDesk/services"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AppointmentHandler struct {
	booking      *services.BookingService
	appointments *services.AppointmentService
	departments  *services.DepartmentService
	doctors      *services.DoctorService
	patients     *services.PatientService
}

func NewAppointmentHandler(
	booking *services.BookingService,
	appointments *services.AppointmentService,
	departments *services.DepartmentService,
	doctors *services.DoctorService,
	patients *services.PatientService,
) *AppointmentHandler {
	return &AppointmentHandler{
		booking:      booking,
		appointments: appointments,
		departments:  departments,
		doctors:      doctors,
		patients:     patients,
	}
}

// GetBookingForm returns the reference data the booking form is built
// from: departments, doctors and registered patients for the selects.
func (h *AppointmentHandler) GetBookingForm(c *gin.Context) {
	departments, err := h.departments.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to load departments", http.StatusInternalServerError, err)
		return
	}
	doctors, err := h.doctors.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to load doctors", http.StatusInternalServerError, err)
		return
	}
	patients, err := h.patients.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to load patients", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"departments": departments,
		"doctors":     doctors,
		"patients":    patients,
		"genders":     []string{models.GenderMale, models.GenderFemale, models.GenderOther},
	}, http.StatusOK)
}

// BookAppointment books an appointment from the submitted form, creating
// the patient record first when no existing patient is selected.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var input services.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	appointment, err := h.booking.Book(c, input)
	if err != nil {
		switch {
		case isValidationError(err),
			errors.Is(err, models.ErrDepartmentNotFound),
			errors.Is(err, models.ErrDoctorNotFound),
			errors.Is(err, models.ErrPatientNotFound):
			middlewares.InvalidInput(c, err)
		default:
			middlewares.HttpError(c, "failed to book appointment", http.StatusInternalServerError, err)
		}
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"message":     fmt.Sprintf("Appointment booked successfully! Your Token Number is %d", appointment.TokenNumber),
		"appointment": appointment,
	}, http.StatusCreated)
}

// CancelAppointment cancels by internal id. An unknown id is a hard 404;
// an already-cancelled appointment yields an informational notice.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid appointment id"))
		return
	}

	appointment, alreadyCancelled, err := h.appointments.Cancel(c, id)
	if err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			middlewares.NotFound(c, "appointment not found")
			return
		}
		middlewares.HttpError(c, "failed to cancel appointment", http.StatusInternalServerError, err)
		return
	}

	if alreadyCancelled {
		middlewares.Notice(c, "This appointment is already cancelled.")
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"message":     fmt.Sprintf("Appointment for %s has been cancelled successfully.", patientName(appointment)),
		"appointment": appointment,
	}, http.StatusOK)
}

// UpdateAppointment applies a staff edit. Setting status to Confirmed goes
// through here; it is not a public lifecycle operation.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid appointment id"))
		return
	}

	existing, err := h.appointments.GetByID(c, id)
	if err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			middlewares.NotFound(c, "appointment not found")
			return
		}
		middlewares.HttpError(c, "failed to load appointment", http.StatusInternalServerError, err)
		return
	}

	var edit struct {
		Status      models.AppointmentStatus `json:"status"`
		Description *string                  `json:"description"`
	}
	if err := c.ShouldBindJSON(&edit); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	if edit.Status != "" {
		existing.Status = edit.Status
	}
	if edit.Description != nil {
		existing.Description = *edit.Description
	}

	if err := h.appointments.Update(c, existing); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}
	middlewares.RespondJSON(c, existing, http.StatusOK)
}

// DownloadPDF streams the printable summary for an appointment.
func (h *AppointmentHandler) DownloadPDF(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid appointment id"))
		return
	}

	summary, err := h.appointments.SummaryByID(c, id)
	if err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			middlewares.NotFound(c, "appointment not found")
			return
		}
		middlewares.HttpError(c, "failed to load appointment", http.StatusInternalServerError, err)
		return
	}

	document, err := report.Compose(summary)
	if err != nil {
		middlewares.HttpError(c, "failed to render report", http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("appointment_%d.pdf", id)))
	c.Data(http.StatusOK, "application/pdf", document)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func patientName(appointment *models.Appointment) string {
	if appointment.Patient != nil {
		return appointment.Patient.Name
	}
	return "Unknown Patient"
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
