package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gesem/isp-service/internal/models"
)

const clientColumns = `
	id, user_id, name, dni, phone, ip, install_date, installer,
	network_name, network_password, plan,
	COALESCE(department, ''), COALESCE(province, ''), COALESCE(district, ''),
	speed, COALESCE(upload_speed, ''), COALESCE(download_speed, ''),
	COALESCE(charge_speed, ''), COALESCE(discharge_speed, ''),
	monthly_amount,
	COALESCE(address, ''), COALESCE(coordinates, ''), COALESCE(reference, ''),
	next_payment_date, is_service_active, created_at, updated_at
`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	c := &models.Client{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.DNI, &c.Phone, &c.IP, &c.InstallDate, &c.Installer,
		&c.NetworkName, &c.NetworkPassword, &c.Plan,
		&c.Department, &c.Province, &c.District,
		&c.Speed, &c.UploadSpeed, &c.DownloadSpeed,
		&c.ChargeSpeed, &c.DischargeSpeed,
		&c.MonthlyAmount,
		&c.Address, &c.Coordinates, &c.Reference,
		&c.NextPaymentDate, &c.IsServiceActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateClient creates a new client for the owning user
func (r *Repository) CreateClient(c *models.Client) error {
	query := `
		INSERT INTO clients (
			user_id, name, dni, phone, ip, install_date, installer,
			network_name, network_password, plan, department, province, district,
			speed, upload_speed, download_speed, charge_speed, discharge_speed,
			monthly_amount, address, coordinates, reference,
			next_payment_date, is_service_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		c.UserID, c.Name, c.DNI, c.Phone, c.IP, c.InstallDate, c.Installer,
		c.NetworkName, c.NetworkPassword, c.Plan, c.Department, c.Province, c.District,
		c.Speed, c.UploadSpeed, c.DownloadSpeed, c.ChargeSpeed, c.DischargeSpeed,
		c.MonthlyAmount, c.Address, c.Coordinates, c.Reference,
		c.NextPaymentDate, c.IsServiceActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// UpdateClient updates all editable fields of an owned client
func (r *Repository) UpdateClient(c *models.Client) error {
	query := `
		UPDATE clients SET
			name = $1, dni = $2, phone = $3, ip = $4, install_date = $5,
			installer = $6, network_name = $7, network_password = $8, plan = $9,
			department = $10, province = $11, district = $12, speed = $13,
			upload_speed = $14, download_speed = $15, charge_speed = $16,
			discharge_speed = $17, monthly_amount = $18, address = $19,
			coordinates = $20, reference = $21, next_payment_date = $22,
			is_service_active = $23, updated_at = CURRENT_TIMESTAMP
		WHERE id = $24 AND user_id = $25
		RETURNING updated_at`
	err := r.db.QueryRow(query,
		c.Name, c.DNI, c.Phone, c.IP, c.InstallDate,
		c.Installer, c.NetworkName, c.NetworkPassword, c.Plan,
		c.Department, c.Province, c.District, c.Speed,
		c.UploadSpeed, c.DownloadSpeed, c.ChargeSpeed,
		c.DischargeSpeed, c.MonthlyAmount, c.Address,
		c.Coordinates, c.Reference, c.NextPaymentDate,
		c.IsServiceActive, c.ID, c.UserID,
	).Scan(&c.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// FindClientByID retrieves an owned client by id
func (r *Repository) FindClientByID(userID, clientID int64) (*models.Client, error) {
	query := `SELECT` + clientColumns + `FROM clients WHERE id = $1 AND user_id = $2`
	c, err := scanClient(r.db.QueryRow(query, clientID, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return c, nil
}

// ListClients retrieves a page of owned clients, newest first, optionally
// filtered by a search term matching name, dni or phone
func (r *Repository) ListClients(userID int64, search string, limit, offset int) ([]models.Client, error) {
	query := `SELECT` + clientColumns + `
		FROM clients
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR dni ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(query, userID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// CountClients returns the number of owned clients matching the search term
func (r *Repository) CountClients(userID int64, search string) (int, error) {
	query := `
		SELECT COUNT(*) FROM clients
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR dni ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')`
	var count int
	if err := r.db.QueryRow(query, userID, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

// ListAllClients retrieves every owned client, newest first
func (r *Repository) ListAllClients(userID int64) ([]models.Client, error) {
	query := `SELECT` + clientColumns + `FROM clients WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// ListDueClients retrieves a page of owned clients whose next payment date is
// on or before the threshold, soonest first
func (r *Repository) ListDueClients(userID int64, threshold time.Time, limit, offset int) ([]models.Client, error) {
	query := `SELECT` + clientColumns + `
		FROM clients
		WHERE user_id = $1 AND next_payment_date <= $2
		ORDER BY next_payment_date, id
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(query, userID, threshold, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list due clients: %w", err)
	}
	defer rows.Close()
	return collectClients(rows)
}

// CountDueClients returns the number of owned clients due on or before the threshold
func (r *Repository) CountDueClients(userID int64, threshold time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM clients WHERE user_id = $1 AND next_payment_date <= $2`
	var count int
	if err := r.db.QueryRow(query, userID, threshold).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count due clients: %w", err)
	}
	return count, nil
}

// DeleteClient removes an owned client; payments and notification logs cascade
func (r *Repository) DeleteClient(userID, clientID int64) error {
	res, err := r.db.Exec(`DELETE FROM clients WHERE id = $1 AND user_id = $2`, clientID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleClientService flips the service-active flag and returns the updated client
func (r *Repository) ToggleClientService(userID, clientID int64) (*models.Client, error) {
	query := `
		UPDATE clients
		SET is_service_active = NOT is_service_active, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING` + clientColumns
	c, err := scanClient(r.db.QueryRow(query, clientID, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle client service: %w", err)
	}
	return c, nil
}

// ClientDNIExists reports whether another owned client already uses the dni
func (r *Repository) ClientDNIExists(userID int64, dni string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM clients WHERE user_id = $1 AND dni = $2 AND id <> $3)`
	var exists bool
	if err := r.db.QueryRow(query, userID, dni, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check dni: %w", err)
	}
	return exists, nil
}

func collectClients(rows *sql.Rows) ([]models.Client, error) {
	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}
