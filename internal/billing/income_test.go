package billing

import (
	"reflect"
	"testing"
	"time"

	"github.com/gesem/isp-service/internal/models"
)

func payment(amount float64, d time.Time) models.Payment {
	return models.Payment{Amount: amount, PaymentDate: d}
}

func TestAggregateIncomeWeekly(t *testing.T) {
	today := date(2025, time.March, 15)

	// One payment of 10 on each of the 7 days ending today.
	var payments []models.Payment
	for i := 0; i < 7; i++ {
		payments = append(payments, payment(10, today.AddDate(0, 0, -i)))
	}

	got := AggregateIncome(payments, PeriodWeekly, today)

	if got.Period != PeriodWeekly {
		t.Errorf("period = %v, want weekly", got.Period)
	}
	if got.Total != 70 {
		t.Errorf("total = %v, want 70", got.Total)
	}
	if len(got.Chart) != 7 {
		t.Fatalf("chart has %d entries, want 7", len(got.Chart))
	}
	wantLabels := []string{"09/03", "10/03", "11/03", "12/03", "13/03", "14/03", "15/03"}
	for i, p := range got.Chart {
		if p.Label != wantLabels[i] {
			t.Errorf("chart[%d].Label = %q, want %q", i, p.Label, wantLabels[i])
		}
		if p.Amount != 10 {
			t.Errorf("chart[%d].Amount = %v, want 10", i, p.Amount)
		}
	}
}

func TestAggregateIncomeWindowBoundaries(t *testing.T) {
	today := date(2025, time.March, 15)

	payments := []models.Payment{
		payment(50, today.AddDate(0, 0, -6)), // exactly on the weekly boundary: included
		payment(99, today.AddDate(0, 0, -7)), // one day before the window: excluded
	}

	got := AggregateIncome(payments, PeriodWeekly, today)
	if got.Total != 50 {
		t.Errorf("total = %v, want 50", got.Total)
	}
	if got.Chart[0].Amount != 50 {
		t.Errorf("chart[0].Amount = %v, want 50", got.Chart[0].Amount)
	}
}

func TestAggregateIncomeMonthly(t *testing.T) {
	today := date(2025, time.March, 15)

	payments := []models.Payment{
		payment(59.90, today),
		payment(59.90, today.AddDate(0, 0, -29)), // window start: included
		payment(100, today.AddDate(0, 0, -30)),   // before window: excluded
	}

	got := AggregateIncome(payments, PeriodMonthly, today)

	if len(got.Chart) != 30 {
		t.Fatalf("chart has %d entries, want 30", len(got.Chart))
	}
	if got.Total != 119.80 {
		t.Errorf("total = %v, want 119.80", got.Total)
	}
	if got.Chart[0].Amount != 59.90 || got.Chart[29].Amount != 59.90 {
		t.Errorf("boundary buckets = (%v, %v), want (59.90, 59.90)",
			got.Chart[0].Amount, got.Chart[29].Amount)
	}
}

func TestAggregateIncomeAnnualEmpty(t *testing.T) {
	today := date(2025, time.March, 15)

	got := AggregateIncome(nil, PeriodAnnual, today)

	if got.Total != 0 {
		t.Errorf("total = %v, want 0", got.Total)
	}
	if len(got.Chart) != 12 {
		t.Fatalf("chart has %d entries, want 12", len(got.Chart))
	}
	wantLabels := []string{"Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic", "Ene", "Feb", "Mar"}
	for i, p := range got.Chart {
		if p.Label != wantLabels[i] {
			t.Errorf("chart[%d].Label = %q, want %q", i, p.Label, wantLabels[i])
		}
		if p.Amount != 0 {
			t.Errorf("chart[%d].Amount = %v, want 0", i, p.Amount)
		}
	}
}

func TestAggregateIncomeAnnualBuckets(t *testing.T) {
	today := date(2025, time.March, 15)

	payments := []models.Payment{
		payment(30, date(2025, time.March, 1)),
		payment(20, date(2025, time.March, 31)), // later in the current month, still in window
		payment(40, date(2024, time.April, 10)), // first month of the window
		payment(99, date(2024, time.March, 31)), // before the window: excluded
	}

	got := AggregateIncome(payments, PeriodAnnual, today)

	if got.Total != 90 {
		t.Errorf("total = %v, want 90", got.Total)
	}
	if got.Chart[0].Amount != 40 {
		t.Errorf("first bucket = %v, want 40", got.Chart[0].Amount)
	}
	if got.Chart[11].Amount != 50 {
		t.Errorf("last bucket = %v, want 50", got.Chart[11].Amount)
	}
}

func TestAggregateIncomeOrderIndependent(t *testing.T) {
	today := date(2025, time.March, 15)

	forward := []models.Payment{
		payment(10, today),
		payment(20, today.AddDate(0, 0, -1)),
		payment(30, today.AddDate(0, 0, -2)),
	}
	reversed := []models.Payment{forward[2], forward[1], forward[0]}

	a := AggregateIncome(forward, PeriodWeekly, today)
	b := AggregateIncome(reversed, PeriodWeekly, today)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregation depends on input order: %+v vs %+v", a, b)
	}
}

func TestAggregateIncomeIdempotent(t *testing.T) {
	today := date(2025, time.March, 15)
	payments := []models.Payment{payment(59.90, today), payment(45.50, today.AddDate(0, 0, -3))}

	a := AggregateIncome(payments, PeriodMonthly, today)
	b := AggregateIncome(payments, PeriodMonthly, today)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", a, b)
	}
}

func TestAggregateIncomeRoundsTotal(t *testing.T) {
	today := date(2025, time.March, 15)
	payments := []models.Payment{
		payment(10.005, today),
		payment(10.001, today),
	}

	got := AggregateIncome(payments, PeriodWeekly, today)
	if got.Total != 20.01 {
		t.Errorf("total = %v, want 20.01", got.Total)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"weekly", PeriodWeekly},
		{"monthly", PeriodMonthly},
		{"annual", PeriodAnnual},
		{"", PeriodMonthly},
		{"bogus", PeriodMonthly},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
