package service

import (
	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
	"github.com/gesem/isp-service/internal/notification"
)

// Alerts returns one page of clients due within the near-expiry window or
// already overdue, soonest due date first. The pagination meta carries the
// full pending count so the UI can show "20 of 57".
func (s *Service) Alerts(userID int64, page, perPage int) ([]models.ClientAlert, PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	if perPage > 50 {
		perPage = 50
	}

	today := billing.Truncate(s.now())
	threshold := today.AddDate(0, 0, 4)

	total, err := s.repo.CountDueClients(userID, threshold)
	if err != nil {
		return nil, PageMeta{}, err
	}

	clients, err := s.repo.ListDueClients(userID, threshold, perPage, (page-1)*perPage)
	if err != nil {
		return nil, PageMeta{}, err
	}

	alerts := make([]models.ClientAlert, 0, len(clients))
	for i := range clients {
		status, days := billing.Classify(clients[i].NextPaymentDate, today)
		alerts = append(alerts, models.ClientAlert{
			ID:              clients[i].ID,
			Name:            clients[i].Name,
			Phone:           clients[i].Phone,
			Plan:            clients[i].Plan,
			Speed:           clients[i].Speed,
			MonthlyAmount:   clients[i].MonthlyAmount,
			NextPaymentDate: clients[i].NextPaymentDate.Format("2006-01-02"),
			Status:          string(status),
			DaysUntilDue:    days,
		})
	}

	return alerts, pageMeta(page, perPage, total), nil
}

// SendNotificationInput carries the request to compose and record a message
type SendNotificationInput struct {
	ClientID int64
	Channel  notification.Channel
	Status   billing.Status // optional, defaults to near_expiry for whatsapp
	Message  string         // optional, composed from templates when empty
}

// SendNotification composes the message for the client (unless the caller
// supplies one) and records a notification log entry. Actual delivery happens
// outside the server.
func (s *Service) SendNotification(userID int64, in SendNotificationInput) (*models.NotificationLog, error) {
	client, err := s.repo.FindClientByID(userID, in.ClientID)
	if err != nil {
		return nil, err
	}

	message := in.Message
	if message == "" {
		if in.Channel == notification.ChannelSMS {
			message = notification.ForSMS(client)
		} else {
			status := in.Status
			if status == "" {
				status = billing.StatusNearExpiry
			}
			message = notification.ForWhatsApp(client, status)
		}
	}

	log := &models.NotificationLog{
		UserID:   userID,
		ClientID: client.ID,
		Channel:  string(in.Channel),
		Message:  message,
		Status:   "sent",
		SentAt:   s.now(),
	}
	if err := s.repo.CreateNotificationLog(log); err != nil {
		return nil, err
	}

	s.log.Infof("Notification logged for client %d via %s", client.ID, in.Channel)
	return log, nil
}
