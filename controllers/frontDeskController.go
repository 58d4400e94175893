package controllers

import (
	"MediDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupFrontDeskRoutes registers the public patient-facing routes.
func SetupFrontDeskRoutes(
	router *gin.Engine,
	appointmentHandler *handlers.AppointmentHandler,
	patientHandler *handlers.PatientHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
	invoiceHandler *handlers.InvoiceHandler,
	departmentHandler *handlers.DepartmentHandler,
	doctorHandler *handlers.DoctorHandler,
	callbackHandler *handlers.CallbackHandler,
) {
	router.GET("/department", departmentHandler.ListDepartments)
	router.GET("/doctor", doctorHandler.ListDoctors)

	router.GET("/appointment", appointmentHandler.GetBookingForm)
	router.POST("/appointment", appointmentHandler.BookAppointment)
	router.GET("/cancel/:id", appointmentHandler.CancelAppointment)
	router.GET("/appointment/:id/pdf", appointmentHandler.DownloadPDF)

	router.GET("/patient", patientHandler.GetStatusForm)
	router.POST("/patient", patientHandler.CheckStatus)

	router.GET("/prescription", prescriptionHandler.GetRetrievalForm)
	router.POST("/prescription", prescriptionHandler.RetrieveByToken)

	router.GET("/invoices", invoiceHandler.ListInvoices)

	router.GET("/request-callback", callbackHandler.GetCallbackForm)
	router.POST("/request-callback", callbackHandler.SubmitCallback)
}

// SetupStaffRoutes registers the back-office routes on a token-protected
// group. The administrative Confirmed mutation lives here.
func SetupStaffRoutes(
	staff *gin.RouterGroup,
	appointmentHandler *handlers.AppointmentHandler,
	patientHandler *handlers.PatientHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
	invoiceHandler *handlers.InvoiceHandler,
	departmentHandler *handlers.DepartmentHandler,
	doctorHandler *handlers.DoctorHandler,
	callbackHandler *handlers.CallbackHandler,
) {
	staff.POST("/departments", departmentHandler.CreateDepartment)
	staff.PUT("/departments/:id", departmentHandler.UpdateDepartment)
	staff.DELETE("/departments/:id", departmentHandler.DeleteDepartment)

	staff.POST("/doctors", doctorHandler.CreateDoctor)
	staff.PUT("/doctors/:id", doctorHandler.UpdateDoctor)

	staff.GET("/patients", patientHandler.ListPatients)

	staff.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)

	staff.POST("/invoices", invoiceHandler.CreateInvoice)
	staff.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)

	staff.POST("/prescriptions", prescriptionHandler.CreatePrescription)
	staff.PUT("/prescriptions/:id", prescriptionHandler.UpdatePrescription)

	staff.GET("/callbacks", callbackHandler.ListCallbacks)
}
