package services

import (
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
)

type InvoiceService struct {
	repository *repositories.InvoiceRepository
}

func NewInvoiceService(repository *repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{repository: repository}
}

func (s *InvoiceService) Create(ctx context.Context, invoice *models.Invoice) error {
	if err := utils.ValidateInvoiceAmounts(*invoice); err != nil {
		return err
	}
	return s.repository.Create(ctx, invoice)
}

func (s *InvoiceService) Update(ctx context.Context, invoice *models.Invoice) error {
	if err := utils.ValidateInvoiceAmounts(*invoice); err != nil {
		return err
	}
	return s.repository.Update(ctx, invoice)
}

func (s *InvoiceService) List(ctx context.Context, page int) (*repositories.InvoicePage, error) {
	return s.repository.List(ctx, page)
}

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Create(ctx, prescription)
}

func (s *PrescriptionService) Update(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Update(ctx, prescription)
}
