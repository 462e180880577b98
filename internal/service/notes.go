package service

import (
	"github.com/gesem/isp-service/internal/models"
)

// CreateNote stores a note stamped with the current time
func (s *Service) CreateNote(userID int64, content string) (*models.Note, error) {
	note := &models.Note{
		UserID:   userID,
		Content:  content,
		NoteDate: s.now(),
	}
	if err := s.repo.CreateNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns all owned notes, newest first
func (s *Service) ListNotes(userID int64) ([]models.Note, error) {
	return s.repo.ListNotes(userID)
}

// DeleteNote removes an owned note
func (s *Service) DeleteNote(userID, noteID int64) error {
	return s.repo.DeleteNote(userID, noteID)
}
