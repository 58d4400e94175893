package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/models"
	"MediDesk/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type CallbackHandler struct {
	callbacks *services.CallbackService
}

func NewCallbackHandler(callbacks *services.CallbackService) *CallbackHandler {
	return &CallbackHandler{callbacks: callbacks}
}

// GetCallbackForm describes the callback form for clients rendering it.
func (h *CallbackHandler) GetCallbackForm(c *gin.Context) {
	middlewares.RespondJSON(c, gin.H{
		"message": "Submit your name, phone and preferred time and we will call you back.",
	}, http.StatusOK)
}

// SubmitCallback stores an anonymous callback request. All three fields
// are required; nothing is persisted when validation fails.
func (h *CallbackHandler) SubmitCallback(c *gin.Context) {
	request := models.CallbackRequest{
		Name:          strings.TrimSpace(c.PostForm("name")),
		Phone:         strings.TrimSpace(c.PostForm("phone")),
		PreferredTime: strings.TrimSpace(c.PostForm("preferred_time")),
	}

	if err := h.callbacks.Submit(c, &request); err != nil {
		if isValidationError(err) {
			middlewares.InvalidInput(c, err)
			return
		}
		middlewares.HttpError(c, "failed to submit callback request", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"message": "Your callback request has been submitted successfully!",
	}, http.StatusCreated)
}

// ListCallbacks returns submitted callback requests, newest first (staff).
func (h *CallbackHandler) ListCallbacks(c *gin.Context) {
	requests, err := h.callbacks.GetAll(c)
	if err != nil {
		middlewares.HttpError(c, "failed to list callback requests", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, requests, http.StatusOK)
}
