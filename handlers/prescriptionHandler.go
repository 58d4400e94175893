package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PrescriptionHandler serves the token-based retrieval of prescription and
// invoice records, plus the staff issue/edit endpoints.
type PrescriptionHandler struct {
	appointments  *services.AppointmentService
	prescriptions *services.PrescriptionService
}

func NewPrescriptionHandler(appointments *services.AppointmentService, prescriptions *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{appointments: appointments, prescriptions: prescriptions}
}

// GetRetrievalForm describes the retrieval form for clients rendering it.
func (h *PrescriptionHandler) GetRetrievalForm(c *gin.Context) {
	middlewares.RespondJSON(c, gin.H{
		"message": "Submit your token number to retrieve your prescription and invoice.",
	}, http.StatusOK)
}

// RetrieveByToken resolves a token to the appointment together with its
// invoice and prescription; either record may be absent.
func (h *PrescriptionHandler) RetrieveByToken(c *gin.Context) {
	token := c.PostForm("token")

	summary, err := h.appointments.SummaryByToken(c, token)
	if err != nil {
		respondTokenError(c, err, token)
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"token":        token,
		"appointment":  summary.Appointment,
		"invoice":      summary.Invoice,
		"prescription": summary.Prescription,
	}, http.StatusOK)
}

// CreatePrescription issues a prescription against an appointment (staff).
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	if err := h.prescriptions.Create(c, &prescription); err != nil {
		if errors.Is(err, models.ErrAppointmentNotFound) {
			middlewares.NotFound(c, "appointment not found")
			return
		}
		middlewares.HttpError(c, "failed to create prescription", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, prescription, http.StatusCreated)
}

// UpdatePrescription edits the free-text fields of a prescription (staff).
func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid prescription id"))
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}
	prescription.ID = id

	if err := h.prescriptions.Update(c, &prescription); err != nil {
		if errors.Is(err, models.ErrPrescriptionNotFound) {
			middlewares.NotFound(c, "prescription not found")
			return
		}
		middlewares.HttpError(c, "failed to update prescription", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, prescription, http.StatusOK)
}
