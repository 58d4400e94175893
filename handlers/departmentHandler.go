package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departments *services.DepartmentService
}

func NewDepartmentHandler(departments *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departments.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to list departments", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, departments, http.StatusOK)
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	if err := h.departments.Create(c, &department); err != nil {
		if isValidationError(err) {
			middlewares.InvalidInput(c, err)
			return
		}
		middlewares.HttpError(c, "failed to create department", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, department, http.StatusCreated)
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid department id"))
		return
	}

	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}
	department.ID = id

	if err := h.departments.Update(c, &department); err != nil {
		if isValidationError(err) {
			middlewares.InvalidInput(c, err)
			return
		}
		middlewares.HttpError(c, "failed to update department", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, department, http.StatusOK)
}

// DeleteDepartment removes a department and, through the cascade, its
// doctors and their appointments. Staff only; not part of the normal flow.
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid department id"))
		return
	}

	if err := h.departments.Delete(c, id); err != nil {
		if errors.Is(err, models.ErrDepartmentNotFound) {
			middlewares.NotFound(c, "department not found")
			return
		}
		middlewares.HttpError(c, "failed to delete department", http.StatusInternalServerError, err)
		return
	}
	middlewares.Notice(c, "Department deleted")
}
