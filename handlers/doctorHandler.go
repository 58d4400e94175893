package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctors *services.DoctorService
}

func NewDoctorHandler(doctors *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to list doctors", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, doctors, http.StatusOK)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	if err := h.doctors.Create(c, &doctor); err != nil {
		switch {
		case errors.Is(err, models.ErrDepartmentNotFound):
			middlewares.NotFound(c, "department not found")
		case isValidationError(err):
			middlewares.InvalidInput(c, err)
		default:
			middlewares.HttpError(c, "failed to create doctor", http.StatusInternalServerError, err)
		}
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusCreated)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid doctor id"))
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}
	doctor.ID = id

	if err := h.doctors.Update(c, &doctor); err != nil {
		if isValidationError(err) {
			middlewares.InvalidInput(c, err)
			return
		}
		middlewares.HttpError(c, "failed to update doctor", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}
