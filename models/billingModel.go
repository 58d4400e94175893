package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice model. TotalAmount is derived: it is recomputed from the three
// input amounts on every save and is never settable independently.
type Invoice struct {
	ID              uint            `gorm:"primaryKey;column:id" json:"id"`
	AppointmentID   uint            `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	ConsultationFee decimal.Decimal `gorm:"column:consultation_fee;type:numeric(10,2);not null;default:0" json:"consultation_fee"`
	MedicineCost    decimal.Decimal `gorm:"column:medicine_cost;type:numeric(10,2);not null;default:0" json:"medicine_cost"`
	OtherCharges    decimal.Decimal `gorm:"column:other_charges;type:numeric(10,2);not null;default:0" json:"other_charges"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null;default:0" json:"total_amount"`
	DateIssued      time.Time       `gorm:"column:date_issued;autoCreateTime;<-:create" json:"date_issued"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Invoice) TableName() string {
	return "invoice"
}

// BeforeSave recomputes the derived total in the same write as the inputs,
// so a persisted invoice can never carry a total that disagrees with them.
func (i *Invoice) BeforeSave(tx *gorm.DB) error {
	i.TotalAmount = i.ConsultationFee.Add(i.MedicineCost).Add(i.OtherCharges).Round(2)
	return nil
}

// Prescription model, 1:1 with an appointment.
type Prescription struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	AppointmentID uint      `gorm:"column:appointment_id;not null;uniqueIndex" json:"appointment_id"`
	Diagnosis     string    `gorm:"column:diagnosis;type:text" json:"diagnosis,omitempty"`
	Medicines     string    `gorm:"column:medicines;type:text" json:"medicines,omitempty"`
	Advice        string    `gorm:"column:advice;type:text" json:"advice,omitempty"`
	DateIssued    time.Time `gorm:"column:date_issued;autoCreateTime;<-:create" json:"date_issued"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}
