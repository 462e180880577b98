package repository

import (
	"fmt"
	"time"

	"github.com/gesem/isp-service/internal/models"
)

// RegisterPayment inserts the payment and advances the client's next payment
// date inside a single transaction, so either both writes persist or neither
// does.
func (r *Repository) RegisterPayment(p *models.Payment, nextPaymentDate time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO payments (user_id, client_id, amount, payment_date, period_label, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err = tx.QueryRow(insert, p.UserID, p.ClientID, p.Amount, p.PaymentDate, p.PeriodLabel).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	update := `
		UPDATE clients
		SET next_payment_date = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3`
	res, err := tx.Exec(update, nextPaymentDate, p.ClientID, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to advance next payment date: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to advance next payment date: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	return nil
}

// ListPayments retrieves all owned payments with their client names, most
// recent payment date first, then newest id
func (r *Repository) ListPayments(userID int64) ([]models.Payment, error) {
	query := `
		SELECT p.id, p.user_id, p.client_id, COALESCE(c.name, ''), p.amount,
		       p.payment_date, COALESCE(p.period_label, ''), p.created_at
		FROM payments p
		LEFT JOIN clients c ON c.id = p.client_id
		WHERE p.user_id = $1
		ORDER BY p.payment_date DESC, p.id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.UserID, &p.ClientID, &p.ClientName, &p.Amount,
			&p.PaymentDate, &p.PeriodLabel, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
