package models

import (
	"time"
)

// AppointmentStatus is the closed set of lifecycle states for an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// statusTransitions is the application-level transition table. Cancelled is
// terminal. Confirmed is never produced by a lifecycle transition; it is set
// only through the staff update endpoint.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle permits moving from s to next.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transition leaves s.
func (s AppointmentStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// BaselineToken is the token number assigned to the first appointment ever
// booked; subsequent tokens continue the sequence.
const BaselineToken = 1000

// Appointment is the hub entity: Invoice and Prescription hang off it 1:1
// and a patient retrieves all three through the public token number.
type Appointment struct {
	ID           uint              `gorm:"primaryKey;column:id" json:"id"`
	PatientID    *uint             `gorm:"column:patient_id;index" json:"patient_id,omitempty"`
	DepartmentID uint              `gorm:"column:department_id;not null;index" json:"department_id"`
	DoctorID     uint              `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Date         time.Time         `gorm:"column:date;type:date;not null" json:"date"`
	Time         string            `gorm:"column:time;size:5;not null" json:"time"`
	Description  string            `gorm:"column:description;type:text" json:"description,omitempty"`
	Status       AppointmentStatus `gorm:"column:status;size:20;not null;default:'Pending'" json:"status"`
	TokenNumber  int               `gorm:"column:token_number;not null;uniqueIndex" json:"token_number"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient    *Patient   `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Department Department `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:CASCADE" json:"department"`
	Doctor     Doctor     `gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE" json:"doctor"`
}

func (Appointment) TableName() string {
	return "appointment"
}
