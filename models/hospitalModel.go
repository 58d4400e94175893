package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender values accepted for a patient record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Department model
type Department struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	Name             string    `gorm:"column:name;size:100;not null;index" json:"name"`
	Description      string    `gorm:"column:description;type:text" json:"description"`
	HeadOfDepartment string    `gorm:"column:head_of_department;size:100" json:"head_of_department"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Doctors          []Doctor  `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Department) TableName() string {
	return "department"
}

// Doctor model
type Doctor struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	Name           string     `gorm:"column:name;size:100;not null" json:"name"`
	Specialization string     `gorm:"column:specialization;size:100;not null" json:"specialization"`
	DepartmentID   uint       `gorm:"column:department_id;not null;index" json:"department_id"`
	Phone          string     `gorm:"column:phone;size:15" json:"phone"`
	Email          string     `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Experience     int        `gorm:"column:experience;not null;default:0;check:experience >= 0" json:"experience"`
	PhotoURL       string     `gorm:"column:photo_url;size:255" json:"photo_url,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Department     Department `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:CASCADE" json:"department"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Patient model
type Patient struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;size:100;not null;index" json:"name"`
	Age            int       `gorm:"column:age;not null;check:age >= 0" json:"age"`
	Gender         string    `gorm:"column:gender;size:10;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Phone          string    `gorm:"column:phone;size:15;not null" json:"phone"`
	Address        string    `gorm:"column:address;type:text" json:"address,omitempty"`
	DateRegistered time.Time `gorm:"column:date_registered;autoCreateTime" json:"date_registered"`
}

func (Patient) TableName() string {
	return "patient"
}

// CallbackRequest is an anonymous public submission. Records are
// append-only and never mutated after creation.
type CallbackRequest struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone         string    `gorm:"column:phone;size:15;not null" json:"phone"`
	PreferredTime string    `gorm:"column:preferred_time;size:50;not null" json:"preferred_time"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CallbackRequest) TableName() string {
	return "callback_request"
}

// SeedDepartments inserts the initial department catalogue into the database
func SeedDepartments(db *gorm.DB) error {
	initialDepartments := []Department{
		{Name: "General Medicine", Description: "Outpatient consultations and general care", HeadOfDepartment: "Dr. R. Menon"},
		{Name: "Cardiology", Description: "Heart and circulatory system", HeadOfDepartment: "Dr. S. Kapoor"},
		{Name: "Orthopaedics", Description: "Bones, joints and musculoskeletal care", HeadOfDepartment: "Dr. A. Thomas"},
		{Name: "Paediatrics", Description: "Child and adolescent health", HeadOfDepartment: "Dr. N. Rao"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, department := range initialDepartments {
			if err := tx.FirstOrCreate(&department, Department{Name: department.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
