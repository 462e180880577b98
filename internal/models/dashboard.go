package models

// ClientStats represents renewal-status counts over the whole client base
type ClientStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	NearExpiry int `json:"near_expiry"`
	Expired    int `json:"expired"`
}

// ClientAlert represents a client whose renewal needs attention
type ClientAlert struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Plan            string  `json:"plan"`
	Speed           string  `json:"speed"`
	MonthlyAmount   float64 `json:"monthly_amount"`
	NextPaymentDate string  `json:"next_payment_date"` // YYYY-MM-DD
	Status          string  `json:"status"`
	DaysUntilDue    int     `json:"days_until_due"`
}

// RecentClient is the compact client view shown on the dashboard
type RecentClient struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Plan          string  `json:"plan"`
	MonthlyAmount float64 `json:"monthly_amount"`
	Status        string  `json:"status"`
}

// NoteView is the note representation returned to the UI
type NoteView struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD HH:MM
}
