package utils

import (
	"MediDesk/config"
	"MediDesk/models"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SendCallbackNotification mails the front desk about a newly submitted
// callback request. Failures are reported, not fatal; the request itself
// is already persisted by the time this runs.
func SendCallbackNotification(smtp config.SMTPConfig, request models.CallbackRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtp.User)
	m.SetHeader("To", smtp.FrontDesk)
	m.SetHeader("Subject", "New callback request: "+request.Name)

	body := fmt.Sprintf(
		"A new callback request has been submitted.\n\nName: %s\nPhone: %s\nPreferred time: %s\n",
		request.Name, request.Phone, request.PreferredTime,
	)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send callback notification: %w", err)
	}
	return nil
}
