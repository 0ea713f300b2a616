package services

import (
	"context"
	"fmt"
	"net/smtp"

	"authbox/internal/config"
	helpers "authbox/internal/utils/helpers"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(to []string, subject, body string) error {
	msg := []byte("Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

func (s *EmailService) SendHTML(to []string, subject, body string) error {
	msg := []byte("Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

// SendPasswordReset ставит письмо со ссылкой сброса в очередь отправки.
// Доставка не подтверждается — fire-and-forget.
func (s *EmailService) SendPasswordReset(_ context.Context, to, resetLink string) error {
	enqueueEmail(EmailJob{
		To:      []string{to},
		Subject: "Восстановление пароля",
		Body:    helpers.BuildPasswordResetHTML(resetLink),
		IsHTML:  true,
	})
	return nil
}
