package routes

import (
	"MediDesk/cache"
	"MediDesk/config"
	"MediDesk/controllers"
	"MediDesk/handlers"
	"MediDesk/middlewares"
	"MediDesk/repositories"
	"MediDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.medidesk.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Repositories
	departmentRepo := repositories.NewDepartmentRepository(cache)
	doctorRepo := repositories.NewDoctorRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	invoiceRepo := repositories.NewInvoiceRepository(cache)
	prescriptionRepo := repositories.NewPrescriptionRepository()
	callbackRepo := repositories.NewCallbackRepository()

	// Services
	departmentService := services.NewDepartmentService(departmentRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	patientService := services.NewPatientService(patientRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, invoiceRepo, prescriptionRepo)
	bookingService := services.NewBookingService(appointmentRepo, patientRepo, departmentRepo, doctorRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo)
	callbackService := services.NewCallbackService(callbackRepo, config)

	// Handlers
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, appointmentService, departmentService, doctorService, patientService)
	patientHandler := handlers.NewPatientHandler(appointmentService, patientService)
	prescriptionHandler := handlers.NewPrescriptionHandler(appointmentService, prescriptionService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	callbackHandler := handlers.NewCallbackHandler(callbackService)

	controllers.SetupRootRoute(router)
	controllers.SetupFrontDeskRoutes(
		router,
		appointmentHandler,
		patientHandler,
		prescriptionHandler,
		invoiceHandler,
		departmentHandler,
		doctorHandler,
		callbackHandler,
	)

	staff := router.Group("/staff")
	staff.Use(middlewares.ValidateStaffToken(config.GetStaffToken()))
	controllers.SetupStaffRoutes(
		staff,
		appointmentHandler,
		patientHandler,
		prescriptionHandler,
		invoiceHandler,
		departmentHandler,
		doctorHandler,
		callbackHandler,
	)

	return router
}
