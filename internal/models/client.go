package models

import "time"

// Client represents an internet subscriber owned by one user
type Client struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	DNI             string    `json:"dni"`
	Phone           string    `json:"phone"`
	IP              string    `json:"ip"`
	InstallDate     time.Time `json:"install_date"`
	Installer       string    `json:"installer"`
	NetworkName     string    `json:"network_name"`
	NetworkPassword string    `json:"network_password"`
	Plan            string    `json:"plan"`
	Department      string    `json:"department"`
	Province        string    `json:"province"`
	District        string    `json:"district"`
	Speed           string    `json:"speed"`
	UploadSpeed     string    `json:"upload_speed"`
	DownloadSpeed   string    `json:"download_speed"`
	ChargeSpeed     string    `json:"charge_speed"`
	DischargeSpeed  string    `json:"discharge_speed"`
	MonthlyAmount   float64   `json:"monthly_amount"`
	Address         string    `json:"address"`
	Coordinates     string    `json:"coordinates"`
	Reference       string    `json:"reference"`
	NextPaymentDate time.Time `json:"next_payment_date"`
	IsServiceActive bool      `json:"is_service_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
