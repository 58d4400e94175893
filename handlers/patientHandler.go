package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PatientHandler serves the patient self-service status check and the
// staff patient roster.
type PatientHandler struct {
	appointments *services.AppointmentService
	patients     *services.PatientService
}

func NewPatientHandler(appointments *services.AppointmentService, patients *services.PatientService) *PatientHandler {
	return &PatientHandler{appointments: appointments, patients: patients}
}

// GetStatusForm describes the token lookup form for clients rendering it.
func (h *PatientHandler) GetStatusForm(c *gin.Context) {
	middlewares.RespondJSON(c, gin.H{
		"message": "Submit your token number to check your appointment status.",
	}, http.StatusOK)
}

// CheckStatus looks up an appointment by the submitted token number.
func (h *PatientHandler) CheckStatus(c *gin.Context) {
	token := c.PostForm("token")

	appointment, err := h.appointments.FindByToken(c, token)
	if err != nil {
		respondTokenError(c, err, token)
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"token":       token,
		"appointment": appointment,
	}, http.StatusOK)
}

// ListPatients returns the registered patient roster for staff.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patients.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to list patients", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, patients, http.StatusOK)
}

// respondTokenError maps token lookup failures: malformed input is an
// input error, a missing record is a lookup failure with the token echoed
// in the message.
func respondTokenError(c *gin.Context, err error, token string) {
	switch {
	case errors.Is(err, models.ErrInvalidToken):
		middlewares.InvalidInput(c, errors.New("Token must be a valid number."))
	case errors.Is(err, models.ErrAppointmentNotFound):
		middlewares.FormNotFound(c, fmt.Sprintf("No appointment found for Token %s", token))
	default:
		middlewares.HttpError(c, "failed to look up token", http.StatusInternalServerError, err)
	}
}
