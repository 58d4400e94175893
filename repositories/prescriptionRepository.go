package repositories

import (
	"MediDesk/database"
	"MediDesk/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PrescriptionRepository struct{}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{}
}

// Create issues a prescription against an appointment; at most one may
// exist per appointment.
func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	var appointment models.Appointment
	if err := database.DB.WithContext(ctx).First(&appointment, "id = ?", prescription.AppointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to find appointment: %w", err)
	}

	if err := database.DB.WithContext(ctx).Create(prescription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("appointment %d already has a prescription", prescription.AppointmentID)
		}
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

// Update edits the free-text fields; the issue timestamp never changes.
func (r *PrescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	var existing models.Prescription
	if err := database.DB.WithContext(ctx).First(&existing, "id = ?", prescription.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrPrescriptionNotFound
		}
		return fmt.Errorf("failed to find prescription: %w", err)
	}

	existing.Diagnosis = prescription.Diagnosis
	existing.Medicines = prescription.Medicines
	existing.Advice = prescription.Advice

	if err := database.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	*prescription = existing
	return nil
}

// GetByAppointmentID returns the appointment's prescription, or nil when
// none has been issued.
func (r *PrescriptionRepository) GetByAppointmentID(ctx context.Context, appointmentID uint) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescription models.Prescription
	err := database.DB.WithContext(ctx).First(&prescription, "appointment_id = ?", appointmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}
