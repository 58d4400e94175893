package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// InvalidInput reports a rejected submission. The request is not aborted
// beyond this response; the message is meant to be shown inline.
func InvalidInput(c *gin.Context, err error) {
	c.JSON(400, gin.H{"error": err.Error()})
}

// NotFound reports a path-parameter lookup that matched no record as a
// hard failure.
func NotFound(c *gin.Context, message string) {
	c.JSON(404, gin.H{"error": message})
}

// FormNotFound reports a failed form lookup inline: the submitting page
// renders the message on a normal response rather than failing the
// request.
func FormNotFound(c *gin.Context, message string) {
	c.JSON(200, gin.H{"error": message})
}

// Notice reports an informational, non-error outcome such as cancelling an
// appointment that is already cancelled.
func Notice(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}
