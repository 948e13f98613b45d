package services

import (
	"fmt"
	"net/smtp"

	"github.com/conquiguias/conquiguias-api/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendVerificationLink(to, link string) error {
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Verifica tu correo</h2>
			<p>Hola,</p>
			<p>Gracias por registrarte en Conquiguias World.</p>
			<p><a href="%s">Haz clic aquí para verificar tu correo electrónico</a></p>
		</body>
		</html>
	`, link)

	return s.Send(to, "Verifica tu correo - Conquiguias World", body)
}

func (s *EmailService) SendPasswordResetLink(to, link string) error {
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Recupera tu contraseña</h2>
			<p>Hola,</p>
			<p>Recibimos una solicitud para restablecer tu contraseña.</p>
			<p><a href="%s">Haz clic aquí para elegir una nueva contraseña</a></p>
		</body>
		</html>
	`, link)

	return s.Send(to, "Recupera tu contraseña - Conquiguias World", body)
}
