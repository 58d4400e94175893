package services

import (
	"MediDesk/config"
	"MediDesk/models"
	"MediDesk/repositories"
	"MediDesk/utils"
	"context"
	"log"
)

// CallbackService persists anonymous callback requests and, when mail is
// configured, notifies the front desk.
type CallbackService struct {
	repository *repositories.CallbackRepository
	config     *config.AppConfig
}

func NewCallbackService(repository *repositories.CallbackRepository, config *config.AppConfig) *CallbackService {
	return &CallbackService{repository: repository, config: config}
}

// Submit validates and stores the request. Notification mail runs in the
// background; a delivery failure never fails the submission.
func (s *CallbackService) Submit(ctx context.Context, request *models.CallbackRequest) error {
	if err := utils.ValidateCallbackRequest(*request); err != nil {
		return err
	}
	if err := s.repository.Create(ctx, request); err != nil {
		return err
	}

	if s.config.MailEnabled() {
		go func(r models.CallbackRequest) {
			if err := utils.SendCallbackNotification(s.config.SMTP, r); err != nil {
				log.Printf("Callback notification failed: %v", err)
			}
		}(*request)
	}
	return nil
}

func (s *CallbackService) GetAll(ctx context.Context) ([]models.CallbackRequest, error) {
	return s.repository.GetAll(ctx)
}
