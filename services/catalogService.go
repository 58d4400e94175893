package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
)

// DepartmentService exposes the department catalogue.
type DepartmentService struct {
	repository *repositories.DepartmentRepository
}

func NewDepartmentService(repository *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repository: repository}
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]models.Department, error) {
	return s.repository.GetAll(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, department *models.Department) error {
	if err := utils.ValidateDepartment(*department); err != nil {
		return err
	}
	return s.repository.Create(ctx, department)
}

func (s *DepartmentService) Update(ctx context.Context, department *models.Department) error {
	if err := utils.ValidateDepartment(*department); err != nil {
		return err
	}
	return s.repository.Update(ctx, department)
}

func (s *DepartmentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

// DoctorService exposes the doctor roster.
type DoctorService struct {
	repository *repositories.DoctorRepository
}

func NewDoctorService(repository *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.repository.GetAll(ctx)
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctor(*doctor); err != nil {
		return err
	}
	return s.repository.Create(ctx, doctor)
}

func (s *DoctorService) Update(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctor(*doctor); err != nil {
		return err
	}
	return s.repository.Update(ctx, doctor)
}

// PatientService lists registered patients for the booking form and the
// staff roster view.
type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}
