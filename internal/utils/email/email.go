package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gesem/isp-service/internal/config"
	"github.com/gesem/isp-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendRenewalDigest emails the owner a summary of clients whose renewal is
// due or overdue
func (s *Sender) SendRenewalDigest(to, username string, alerts []models.ClientAlert) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("GESEM: %d clientes por vencer o vencidos", len(alerts))

	var body strings.Builder
	fmt.Fprintf(&body, "Hola %s,\n\n", username)
	fmt.Fprintf(&body, "Estos clientes requieren atención hoy:\n\n")
	for _, a := range alerts {
		if a.Status == "expired" {
			fmt.Fprintf(&body, "- %s (%s): vencido hace %d días, S/ %.2f pendiente. Tel: %s\n",
				a.Name, a.Plan, -a.DaysUntilDue, a.MonthlyAmount, a.Phone)
		} else {
			fmt.Fprintf(&body, "- %s (%s): vence el %s (en %d días), S/ %.2f. Tel: %s\n",
				a.Name, a.Plan, a.NextPaymentDate, a.DaysUntilDue, a.MonthlyAmount, a.Phone)
		}
	}
	body.WriteString("\nSaludos,\nGESEM\n")
	e.Text = []byte(body.String())

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", to, err)
		return fmt.Errorf("failed to send digest: %w", err)
	}

	s.logger.Infof("Digest sent to %s: %s", to, e.Subject)
	return nil
}
