package service

import (
	"testing"
	"time"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clientDue(id int64, name string, due time.Time) models.Client {
	return models.Client{
		ID:              id,
		Name:            name,
		Phone:           "999000111",
		Plan:            "Plan Hogar",
		Speed:           "100 Mbps",
		MonthlyAmount:   59.90,
		NextPaymentDate: due,
	}
}

func TestAssembleDashboardStats(t *testing.T) {
	today := day(2025, time.March, 15)

	clients := []models.Client{
		clientDue(3, "Carlos", today.AddDate(0, 0, 10)), // active
		clientDue(2, "Berta", today.AddDate(0, 0, 2)),   // near expiry
		clientDue(1, "Ana", today.AddDate(0, 0, -3)),    // expired
	}

	data := assembleDashboard(clients, nil, nil, billing.PeriodMonthly, today)

	want := models.ClientStats{Total: 3, Active: 1, NearExpiry: 1, Expired: 1}
	if data.Stats != want {
		t.Errorf("stats = %+v, want %+v", data.Stats, want)
	}
	if data.AlertsPending != 2 {
		t.Errorf("alerts pending = %d, want 2", data.AlertsPending)
	}
	if len(data.Alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(data.Alerts))
	}
	// Most overdue first.
	if data.Alerts[0].Name != "Ana" || data.Alerts[0].DaysUntilDue != -3 {
		t.Errorf("alerts[0] = %+v, want Ana at -3 days", data.Alerts[0])
	}
	if data.Alerts[1].Name != "Berta" || data.Alerts[1].DaysUntilDue != 2 {
		t.Errorf("alerts[1] = %+v, want Berta at 2 days", data.Alerts[1])
	}
}

func TestAssembleDashboardStatsIndependentOfAlertTruncation(t *testing.T) {
	today := day(2025, time.March, 15)

	// More overdue clients than the dashboard alert list holds.
	var clients []models.Client
	for i := 0; i < maxDashboardAlerts+7; i++ {
		clients = append(clients, clientDue(int64(i+1), "Cliente", today.AddDate(0, 0, -(i+1))))
	}

	data := assembleDashboard(clients, nil, nil, billing.PeriodMonthly, today)

	if data.Stats.Total != maxDashboardAlerts+7 || data.Stats.Expired != maxDashboardAlerts+7 {
		t.Errorf("stats = %+v, want all %d expired", data.Stats, maxDashboardAlerts+7)
	}
	if data.AlertsPending != maxDashboardAlerts+7 {
		t.Errorf("alerts pending = %d, want %d", data.AlertsPending, maxDashboardAlerts+7)
	}
	if len(data.Alerts) != maxDashboardAlerts {
		t.Errorf("alerts shown = %d, want %d", len(data.Alerts), maxDashboardAlerts)
	}
}

func TestAssembleDashboardAlertTieBreakIsStable(t *testing.T) {
	today := day(2025, time.March, 15)
	due := today.AddDate(0, 0, 1)

	// Listing order is id descending, as the repository returns it.
	clients := []models.Client{
		clientDue(5, "Quinta", due),
		clientDue(4, "Cuarta", due),
		clientDue(3, "Tercera", due),
	}

	for run := 0; run < 3; run++ {
		data := assembleDashboard(clients, nil, nil, billing.PeriodMonthly, today)
		gotNames := []string{data.Alerts[0].Name, data.Alerts[1].Name, data.Alerts[2].Name}
		wantNames := []string{"Quinta", "Cuarta", "Tercera"}
		for i := range wantNames {
			if gotNames[i] != wantNames[i] {
				t.Fatalf("run %d: alert order = %v, want %v", run, gotNames, wantNames)
			}
		}
	}
}

func TestAssembleDashboardRecentClients(t *testing.T) {
	today := day(2025, time.March, 15)

	var clients []models.Client
	for i := 8; i >= 1; i-- { // newest first, as listed by the repository
		clients = append(clients, clientDue(int64(i), "Cliente", today.AddDate(0, 0, 10)))
	}

	data := assembleDashboard(clients, nil, nil, billing.PeriodMonthly, today)

	if len(data.RecentClients) != recentClientCount {
		t.Fatalf("recent clients = %d, want %d", len(data.RecentClients), recentClientCount)
	}
	if data.RecentClients[0].ID != 8 {
		t.Errorf("recent[0].ID = %d, want 8", data.RecentClients[0].ID)
	}
	if data.RecentClients[0].Status != string(billing.StatusActive) {
		t.Errorf("recent[0].Status = %q, want active", data.RecentClients[0].Status)
	}
}

func TestAssembleDashboardIncomeAndNotes(t *testing.T) {
	today := day(2025, time.March, 15)

	payments := []models.Payment{
		{Amount: 59.90, PaymentDate: today},
		{Amount: 40.10, PaymentDate: today.AddDate(0, 0, -1)},
	}
	notes := []models.Note{
		{ID: 1, Content: "Visita técnica pendiente", NoteDate: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)},
	}

	data := assembleDashboard(nil, payments, notes, billing.PeriodWeekly, today)

	if data.Income.Period != billing.PeriodWeekly {
		t.Errorf("income period = %v, want weekly", data.Income.Period)
	}
	if data.Income.Total != 100 {
		t.Errorf("income total = %v, want 100", data.Income.Total)
	}
	if len(data.Notes) != 1 || data.Notes[0].Date != "2025-03-14 09:30" {
		t.Errorf("notes = %+v, want one note dated 2025-03-14 09:30", data.Notes)
	}
}
