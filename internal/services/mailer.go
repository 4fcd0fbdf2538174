package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/movex-app/movex-backend/internal/config"
)

// MailerService sends OTP emails over SMTP.
type MailerService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerService creates a mailer from SMTP settings.
func NewMailerService(cfg config.Config) (*MailerService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("missing SMTP settings in environment variables")
	}

	return &MailerService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}, nil
}

// SendEmailOTP delivers a one-time code to the given address.
func (m *MailerService) SendEmailOTP(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your OTP Code")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP is %s. Valid for 5 minutes.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("❌ Failed to send OTP email: %v", err)
		return err
	}
	return nil
}

// SendSMSOTP is not supported over SMTP.
func (m *MailerService) SendSMSOTP(phone, code string) error {
	return fmt.Errorf("mailer service cannot deliver SMS to %s", phone)
}
