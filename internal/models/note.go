package models

import "time"

// Note represents a free-text staff note
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	NoteDate  time.Time `json:"note_date"`
	CreatedAt time.Time `json:"created_at"`
}
