package service

import (
	"sort"
	"time"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
)

// maxDashboardAlerts bounds the alert list embedded in the dashboard payload;
// the full count travels separately in AlertsPending
const maxDashboardAlerts = 20

// recentClientCount bounds the recent-clients slice on the dashboard
const recentClientCount = 5

// DashboardData is the read-model the dashboard UI renders
type DashboardData struct {
	Stats         models.ClientStats    `json:"stats"`
	Income        billing.IncomeSummary `json:"income"`
	Alerts        []models.ClientAlert  `json:"alerts"`
	AlertsPending int                   `json:"alerts_pending"`
	RecentClients []models.RecentClient `json:"clients_recent"`
	Notes         []models.NoteView     `json:"notes"`
}

// Dashboard loads the owner's data and assembles the dashboard read-model for
// the selected income period
func (s *Service) Dashboard(userID int64, period billing.Period) (*DashboardData, error) {
	clients, err := s.repo.ListAllClients(userID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(userID)
	if err != nil {
		return nil, err
	}
	notes, err := s.repo.ListNotes(userID)
	if err != nil {
		return nil, err
	}

	return assembleDashboard(clients, payments, notes, period, s.now()), nil
}

// assembleDashboard composes the dashboard payload from already-loaded data.
// Stats always cover the whole client set; the alert list is truncated for
// display while the pending total is kept alongside it.
func assembleDashboard(clients []models.Client, payments []models.Payment, notes []models.Note, period billing.Period, today time.Time) *DashboardData {
	data := &DashboardData{
		Stats:  models.ClientStats{Total: len(clients)},
		Income: billing.AggregateIncome(payments, period, today),
	}

	type classified struct {
		client *models.Client
		status billing.Status
		days   int
	}
	statuses := make([]classified, len(clients))
	for i := range clients {
		status, days := billing.Classify(clients[i].NextPaymentDate, today)
		statuses[i] = classified{client: &clients[i], status: status, days: days}
		switch status {
		case billing.StatusActive:
			data.Stats.Active++
		case billing.StatusNearExpiry:
			data.Stats.NearExpiry++
		case billing.StatusExpired:
			data.Stats.Expired++
		}
	}

	var alerts []models.ClientAlert
	for _, cs := range statuses {
		if cs.status == billing.StatusActive {
			continue
		}
		alerts = append(alerts, models.ClientAlert{
			ID:              cs.client.ID,
			Name:            cs.client.Name,
			Phone:           cs.client.Phone,
			Plan:            cs.client.Plan,
			Speed:           cs.client.Speed,
			MonthlyAmount:   cs.client.MonthlyAmount,
			NextPaymentDate: cs.client.NextPaymentDate.Format("2006-01-02"),
			Status:          string(cs.status),
			DaysUntilDue:    cs.days,
		})
	}
	// Most overdue first; ties keep the listing order.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilDue < alerts[j].DaysUntilDue
	})
	data.AlertsPending = len(alerts)
	if len(alerts) > maxDashboardAlerts {
		alerts = alerts[:maxDashboardAlerts]
	}
	data.Alerts = alerts

	for i, cs := range statuses {
		if i == recentClientCount {
			break
		}
		data.RecentClients = append(data.RecentClients, models.RecentClient{
			ID:            cs.client.ID,
			Name:          cs.client.Name,
			Phone:         cs.client.Phone,
			Plan:          cs.client.Plan,
			MonthlyAmount: cs.client.MonthlyAmount,
			Status:        string(cs.status),
		})
	}

	for _, n := range notes {
		data.Notes = append(data.Notes, models.NoteView{
			ID:      n.ID,
			Content: n.Content,
			Date:    n.NoteDate.Format("2006-01-02 15:04"),
		})
	}

	return data
}
