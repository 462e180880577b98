package service

import (
	"time"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
)

// RegisterPaymentInput carries the caller-supplied payment fields. PaymentDate
// and PeriodLabel are optional and default to today and the Spanish
// "Month Year" of the payment date.
type RegisterPaymentInput struct {
	ClientID    int64
	Amount      float64
	PaymentDate *time.Time
	PeriodLabel string
}

// RegisterPayment records a payment for an owned client and advances the
// client's next payment date by one calendar month. Both writes happen in one
// transaction.
func (s *Service) RegisterPayment(userID int64, in RegisterPaymentInput) (*models.Payment, error) {
	client, err := s.repo.FindClientByID(userID, in.ClientID)
	if err != nil {
		return nil, err
	}

	paymentDate := billing.Truncate(s.now())
	if in.PaymentDate != nil {
		paymentDate = billing.Truncate(*in.PaymentDate)
	}

	periodLabel := in.PeriodLabel
	if periodLabel == "" {
		periodLabel = billing.PeriodLabel(paymentDate)
	}

	payment := &models.Payment{
		UserID:      userID,
		ClientID:    client.ID,
		ClientName:  client.Name,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		PeriodLabel: periodLabel,
	}

	nextDue := billing.AddMonth(billing.Truncate(client.NextPaymentDate))
	if err := s.repo.RegisterPayment(payment, nextDue); err != nil {
		return nil, err
	}

	s.log.Infof("Payment of %.2f registered for client %d, next due %s",
		payment.Amount, client.ID, nextDue.Format("2006-01-02"))
	return payment, nil
}

// ListPayments returns all owned payments, newest first
func (s *Service) ListPayments(userID int64) ([]models.Payment, error) {
	return s.repo.ListPayments(userID)
}
