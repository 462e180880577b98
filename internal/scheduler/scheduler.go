// Package scheduler runs the daily renewal scan that emails each owner a
// digest of clients due within the alert window or already overdue.
package scheduler

import (
	"fmt"

	"github.com/gesem/isp-service/internal/models"
	"github.com/gesem/isp-service/internal/repository"
	"github.com/gesem/isp-service/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestSender delivers the daily renewal digest to an owner
type DigestSender interface {
	SendRenewalDigest(to, username string, alerts []models.ClientAlert) error
}

// Scheduler owns the cron instance and the daily scan job
type Scheduler struct {
	repo   *repository.Repository
	svc    *service.Service
	sender DigestSender
	log    *logrus.Logger
	cron   *cron.Cron
}

// New creates a scheduler with the daily scan registered on the given cron spec
func New(repo *repository.Repository, svc *service.Service, sender DigestSender, log *logrus.Logger, spec string) (*Scheduler, error) {
	s := &Scheduler{
		repo:   repo,
		svc:    svc,
		sender: sender,
		log:    log,
		cron:   cron.New(),
	}
	if _, err := s.cron.AddFunc(spec, s.RunDailyScan); err != nil {
		return nil, fmt.Errorf("failed to register daily scan: %w", err)
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Renewal alert scheduler started")
}

// Stop halts the cron loop
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunDailyScan emails every owner the list of clients needing attention.
// Failures for one owner never block the others.
func (s *Scheduler) RunDailyScan() {
	users, err := s.repo.ListUsers()
	if err != nil {
		s.log.Errorf("Daily scan aborted: %v", err)
		return
	}

	for _, user := range users {
		alerts, meta, err := s.svc.Alerts(user.ID, 1, 50)
		if err != nil {
			s.log.Errorf("Daily scan failed for user %d: %v", user.ID, err)
			continue
		}
		if meta.Total == 0 {
			continue
		}
		if err := s.sender.SendRenewalDigest(user.Email, user.Username, alerts); err != nil {
			s.log.Errorf("Digest delivery failed for user %d: %v", user.ID, err)
			continue
		}
		s.log.Infof("Digest sent to user %d with %d alerts (%d pending in total)",
			user.ID, len(alerts), meta.Total)
	}
}
