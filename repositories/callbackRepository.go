package repositories

import (
	"MediDesk/database"
	"MediDesk/models"
	"context"
	"fmt"
	"time"
)

type CallbackRepository struct{}

func NewCallbackRepository() *CallbackRepository {
	return &CallbackRepository{}
}

func (r *CallbackRepository) Create(ctx context.Context, request *models.CallbackRequest) error {
	if err := database.DB.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}
	return nil
}

func (r *CallbackRepository) GetAll(ctx context.Context) ([]models.CallbackRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var requests []models.CallbackRequest
	err := database.DB.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list callback requests: %w", err)
	}
	return requests, nil
}
