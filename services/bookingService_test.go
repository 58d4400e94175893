package services

import "testing"

func validBookingForm() BookingInput {
	return BookingInput{
		DepartmentID: 1,
		DoctorID:     2,
		Date:         "2026-09-15",
		Time:         "10:30",
		Description:  "persistent cough",
		Name:         "Asha",
		Age:          30,
		Gender:       "Female",
		Phone:        "5550100",
	}
}

func TestBookingInputValidate_NewPatient(t *testing.T) {
	form := validBookingForm()
	if err := form.Validate(); err != nil {
		t.Errorf("unexpected error for valid new-patient form: %v", err)
	}
}

func TestBookingInputValidate_ExistingPatient(t *testing.T) {
	patientID := uint(7)
	form := BookingInput{
		DepartmentID:  1,
		DoctorID:      2,
		Date:          "2026-09-15",
		Time:          "10:30",
		PatientSelect: &patientID,
	}
	if err := form.Validate(); err != nil {
		t.Errorf("unexpected error when an existing patient is selected: %v", err)
	}
}

func TestBookingInputValidate_MissingPatientDetails(t *testing.T) {
	form := validBookingForm()
	form.Name = ""
	if err := form.Validate(); err == nil {
		t.Error("expected error when neither a patient is selected nor a name given")
	}

	form = validBookingForm()
	form.Phone = ""
	if err := form.Validate(); err == nil {
		t.Error("expected error when a new patient has no phone")
	}
}

func TestBookingInputValidate_Gender(t *testing.T) {
	form := validBookingForm()
	form.Gender = "Unknown"
	if err := form.Validate(); err == nil {
		t.Error("expected error for gender outside the enumerated set")
	}
}

func TestBookingInputValidate_DateAndTime(t *testing.T) {
	form := validBookingForm()
	form.Date = "15-09-2026"
	if err := form.Validate(); err == nil {
		t.Error("expected error for malformed date")
	}

	form = validBookingForm()
	form.Time = "25:99"
	if err := form.Validate(); err == nil {
		t.Error("expected error for malformed time")
	}
}
