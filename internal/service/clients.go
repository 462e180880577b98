package service

import (
	"errors"

	"github.com/gesem/isp-service/internal/models"
	"github.com/gesem/isp-service/internal/repository"
)

// ErrDNIDuplicated is returned when another client of the same owner already
// uses the dni
var ErrDNIDuplicated = errors.New("dni already exists for this account")

// PageMeta describes one page of a listing
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func pageMeta(page, perPage, total int) PageMeta {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{CurrentPage: page, LastPage: lastPage, PerPage: perPage, Total: total}
}

// CreateClient stores a new client after checking the per-owner dni uniqueness
func (s *Service) CreateClient(client *models.Client) (*models.Client, error) {
	exists, err := s.repo.ClientDNIExists(client.UserID, client.DNI, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDNIDuplicated
	}

	if err := s.repo.CreateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client created for user %d: %s", client.UserID, client.Name)
	return client, nil
}

// UpdateClient updates an owned client after checking the per-owner dni uniqueness
func (s *Service) UpdateClient(client *models.Client) (*models.Client, error) {
	exists, err := s.repo.ClientDNIExists(client.UserID, client.DNI, client.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDNIDuplicated
	}

	if err := s.repo.UpdateClient(client); err != nil {
		return nil, err
	}

	s.log.Infof("Client %d updated for user %d", client.ID, client.UserID)
	return client, nil
}

// GetClient retrieves a single owned client
func (s *Service) GetClient(userID, clientID int64) (*models.Client, error) {
	return s.repo.FindClientByID(userID, clientID)
}

// ListClients returns one page of owned clients plus pagination meta
func (s *Service) ListClients(userID int64, search string, page, perPage int) ([]models.Client, PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	if perPage > 50 {
		perPage = 50
	}

	total, err := s.repo.CountClients(userID, search)
	if err != nil {
		return nil, PageMeta{}, err
	}

	clients, err := s.repo.ListClients(userID, search, perPage, (page-1)*perPage)
	if err != nil {
		return nil, PageMeta{}, err
	}

	return clients, pageMeta(page, perPage, total), nil
}

// DeleteClient removes an owned client and everything that hangs off it
func (s *Service) DeleteClient(userID, clientID int64) error {
	if err := s.repo.DeleteClient(userID, clientID); err != nil {
		return err
	}
	s.log.Infof("Client %d deleted for user %d", clientID, userID)
	return nil
}

// ToggleClientService flips the service-active flag of an owned client
func (s *Service) ToggleClientService(userID, clientID int64) (*models.Client, error) {
	client, err := s.repo.ToggleClientService(userID, clientID)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Client %d service toggled to %t", clientID, client.IsServiceActive)
	return client, nil
}

// IsNotFound reports whether the error means a missing or foreign-owned record
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
