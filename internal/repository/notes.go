package repository

import (
	"fmt"

	"github.com/gesem/isp-service/internal/models"
)

// CreateNote creates a new note for the owning user
func (r *Repository) CreateNote(n *models.Note) error {
	query := `
		INSERT INTO notes (user_id, content, note_date, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, n.UserID, n.Content, n.NoteDate).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// ListNotes retrieves all owned notes, most recent first
func (r *Repository) ListNotes(userID int64) ([]models.Note, error) {
	query := `
		SELECT id, user_id, content, note_date, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY note_date DESC, id DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.NoteDate, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// DeleteNote removes an owned note
func (r *Repository) DeleteNote(userID, noteID int64) error {
	res, err := r.db.Exec(`DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
