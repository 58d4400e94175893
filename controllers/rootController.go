package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the landing route
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "MediDesk hospital front desk",
		"message": "Welcome! Book an appointment, check your token, or request a callback.",
	})
}

// SetupRootRoute sets up the landing route for the application
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
