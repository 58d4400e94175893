package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookingInput is the appointment booking form. The caller either selects
// an existing patient or supplies the details for a new one.
type BookingInput struct {
	DepartmentID uint   `form:"department" json:"department"`
	DoctorID     uint   `form:"doctor" json:"doctor"`
	Date         string `form:"date" json:"date"`
	Time         string `form:"time" json:"time"`
	Description  string `form:"description" json:"description"`

	PatientSelect *uint  `form:"patient_select" json:"patient_select"`
	Name          string `form:"name" json:"name"`
	Age           int    `form:"age" json:"age"`
	Gender        string `form:"gender" json:"gender"`
	Phone         string `form:"phone" json:"phone"`
	Address       string `form:"address" json:"address"`
}

// Validate applies the booking form rules: appointment fields are always
// required; patient details are required only when no existing patient is
// selected.
func (f BookingInput) Validate() error {
	newPatient := f.PatientSelect == nil
	return validation.ValidateStruct(&f,
		validation.Field(&f.DepartmentID, validation.Required),
		validation.Field(&f.DoctorID, validation.Required),
		validation.Field(&f.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&f.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&f.Name, validation.Required.When(newPatient).Error("either select an existing patient or provide the new patient's name"), validation.Length(0, 100)),
		validation.Field(&f.Age, validation.Required.When(newPatient).Error("age is required for a new patient"), validation.Min(0)),
		validation.Field(&f.Gender, validation.Required.When(newPatient).Error("gender is required for a new patient"),
			validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&f.Phone, validation.Required.When(newPatient).Error("phone is required for a new patient"), validation.Length(0, 15)),
	)
}

// BookingService orchestrates appointment booking: it resolves or creates
// the patient record, then hands the appointment to the repository, which
// allocates the token number.
type BookingService struct {
	appointments *repositories.AppointmentRepository
	patients     *repositories.PatientRepository
	departments  *repositories.DepartmentRepository
	doctors      *repositories.DoctorRepository
}

func NewBookingService(
	appointments *repositories.AppointmentRepository,
	patients *repositories.PatientRepository,
	departments *repositories.DepartmentRepository,
	doctors *repositories.DoctorRepository,
) *BookingService {
	return &BookingService{
		appointments: appointments,
		patients:     patients,
		departments:  departments,
		doctors:      doctors,
	}
}

// Book validates the form, resolves the patient, and creates a Pending
// appointment carrying the next token number.
func (s *BookingService) Book(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	// An empty patient_select form value binds as a pointer to zero;
	// both mean "new patient".
	if input.PatientSelect != nil && *input.PatientSelect == 0 {
		input.PatientSelect = nil
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.departments.GetByID(ctx, input.DepartmentID); err != nil {
		return nil, err
	}
	if _, err := s.doctors.GetByID(ctx, input.DoctorID); err != nil {
		return nil, err
	}

	var patient *models.Patient
	if input.PatientSelect != nil {
		existing, err := s.patients.GetByID(ctx, *input.PatientSelect)
		if err != nil {
			return nil, err
		}
		patient = existing
	} else {
		patient = &models.Patient{
			Name:    input.Name,
			Age:     input.Age,
			Gender:  input.Gender,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := s.patients.Create(ctx, patient); err != nil {
			return nil, err
		}
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:    &patient.ID,
		DepartmentID: input.DepartmentID,
		DoctorID:     input.DoctorID,
		Date:         date,
		Time:         input.Time,
		Description:  input.Description,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	appointment.Patient = patient
	return appointment, nil
}
