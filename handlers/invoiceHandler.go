package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// ListInvoices returns one page of the invoice listing, newest first.
// Out-of-range page numbers clamp to the nearest valid page.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.invoices.List(c, page)
	if err != nil {
		middlewares.HttpError(c, "failed to list invoices", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, result, http.StatusOK)
}

// CreateInvoice issues an invoice against an appointment (staff). The
// total is derived on save; only the three input amounts are accepted.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}

	if err := h.invoices.Create(c, &invoice); err != nil {
		switch {
		case errors.Is(err, models.ErrAppointmentNotFound):
			middlewares.NotFound(c, "appointment not found")
		case isValidationError(err):
			middlewares.InvalidInput(c, err)
		default:
			middlewares.HttpError(c, "failed to create invoice", http.StatusInternalServerError, err)
		}
		return
	}
	middlewares.RespondJSON(c, invoice, http.StatusCreated)
}

// UpdateInvoice edits the input amounts of an invoice (staff).
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middlewares.InvalidInput(c, errors.New("invalid invoice id"))
		return
	}

	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		middlewares.InvalidInput(c, err)
		return
	}
	invoice.ID = id

	if err := h.invoices.Update(c, &invoice); err != nil {
		switch {
		case errors.Is(err, models.ErrInvoiceNotFound):
			middlewares.NotFound(c, "invoice not found")
		case isValidationError(err):
			middlewares.InvalidInput(c, err)
		default:
			middlewares.HttpError(c, "failed to update invoice", http.StatusInternalServerError, err)
		}
		return
	}
	middlewares.RespondJSON(c, invoice, http.StatusOK)
}
