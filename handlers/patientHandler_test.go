package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"MediDesk/models"
)

func tokenErrorResponse(t *testing.T, err error, token string) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondTokenError(c, err, token)
	return w.Code, w.Body.String()
}

func TestRespondTokenErrorUnknownTokenRendersInline(t *testing.T) {
	code, body := tokenErrorResponse(t, models.ErrAppointmentNotFound, "9999")
	if code != 200 {
		t.Fatalf("expected status 200 for an unknown token on a form flow, got %d", code)
	}
	if !strings.Contains(body, "No appointment found for Token 9999") {
		t.Errorf("expected inline not-found message, got %q", body)
	}
	if !strings.Contains(body, `"error"`) {
		t.Errorf("expected message under the error key, got %q", body)
	}
}

func TestRespondTokenErrorMalformedTokenIsInvalidInput(t *testing.T) {
	code, body := tokenErrorResponse(t, models.ErrInvalidToken, "abc")
	if code != 400 {
		t.Fatalf("expected status 400 for a malformed token, got %d", code)
	}
	if !strings.Contains(body, "Token must be a valid number.") {
		t.Errorf("expected validation message, got %q", body)
	}
}
