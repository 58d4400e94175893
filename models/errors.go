package models

import "errors"

// Error taxonomy shared by repositories, services and handlers. Handlers map
// these to HTTP responses; nothing here is fatal to the process.
var (
	ErrInvalidToken         = errors.New("token must be a valid number")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
)
