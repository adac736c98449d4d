package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

var digestTemplate = template.Must(template.ParseFS(templatesFS, "templates/digest.html"))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func RenderDigest(data DigestEmailData) (string, error) {
	var body bytes.Buffer
	if err := digestTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func digestSubject(data DigestEmailData) string {
	if data.TotalUrgent == 1 {
		return "📋 Pendências de hoje: 1 item urgente"
	}
	return fmt.Sprintf("📋 Pendências de hoje: %d itens urgentes", data.TotalUrgent)
}

func (s *EmailSender) buildDigest(to string, data DigestEmailData) (*gomail.Message, error) {
	body, err := RenderDigest(data)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", digestSubject(data))
	m.SetBody("text/html", body)
	return m, nil
}

func (s *EmailSender) SendDigest(to string, data DigestEmailData) error {
	if s.Host == "" {
		return fmt.Errorf("MAIL_HOST não configurado")
	}

	m, err := s.buildDigest(to, data)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
