package models

import "time"

// Payment represents a registered payment for a client
type Payment struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ClientID    int64     `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"` // filled by list queries
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	PeriodLabel string    `json:"period_label"`
	CreatedAt   time.Time `json:"created_at"`
}
