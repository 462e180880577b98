package repository

import (
	"fmt"

	"github.com/gesem/isp-service/internal/models"
)

// CreateNotificationLog records a composed notification message
func (r *Repository) CreateNotificationLog(l *models.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (user_id, client_id, channel, message, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query, l.UserID, l.ClientID, l.Channel, l.Message, l.Status, l.SentAt).
		Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}
	return nil
}
