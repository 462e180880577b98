package models

import "time"

// NotificationLog records a composed reminder message and its channel
type NotificationLog struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	ClientID int64     `json:"client_id"`
	Channel  string    `json:"channel"` // whatsapp or sms
	Message  string    `json:"message"`
	Status   string    `json:"status"`
	SentAt   time.Time `json:"sent_at"`
}
