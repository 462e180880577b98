package billing

import (
	"math"
	"time"

	"github.com/gesem/isp-service/internal/models"
)

// Period selects the income aggregation window
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
)

// ParsePeriod maps a query parameter to a Period, defaulting to monthly
func ParsePeriod(s string) Period {
	switch s {
	case string(PeriodWeekly):
		return PeriodWeekly
	case string(PeriodAnnual):
		return PeriodAnnual
	default:
		return PeriodMonthly
	}
}

// ChartPoint is one labeled bucket of the income series
type ChartPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// IncomeSummary is the aggregated income over a period window
type IncomeSummary struct {
	Period Period       `json:"period"`
	Total  float64      `json:"total"`
	Chart  []ChartPoint `json:"chart"`
}

// AggregateIncome buckets payment amounts by calendar unit over the selected
// window ending today: 7 daily buckets for weekly, 30 daily buckets for
// monthly and 12 monthly buckets for annual. Buckets without payments stay at
// zero so the chart always has a fixed length. Input order never affects the
// result.
func AggregateIncome(payments []models.Payment, period Period, today time.Time) IncomeSummary {
	today = Truncate(today)

	var points []ChartPoint
	var total float64

	switch period {
	case PeriodAnnual:
		points, total = aggregateByMonth(payments, today)
	case PeriodWeekly:
		points, total = aggregateByDay(payments, today, 7)
	default:
		period = PeriodMonthly
		points, total = aggregateByDay(payments, today, 30)
	}

	return IncomeSummary{
		Period: period,
		Total:  roundCurrency(total),
		Chart:  points,
	}
}

// aggregateByDay produces one bucket per calendar day for the last `days`
// days inclusive of today, in chronological order.
func aggregateByDay(payments []models.Payment, today time.Time, days int) ([]ChartPoint, float64) {
	start := today.AddDate(0, 0, -(days - 1))

	points := make([]ChartPoint, days)
	for i := range points {
		points[i].Label = DayLabel(start.AddDate(0, 0, i))
	}

	var total float64
	for _, p := range payments {
		idx := DaysBetween(start, p.PaymentDate)
		if idx < 0 || idx >= days {
			continue
		}
		points[idx].Amount += p.Amount
		total += p.Amount
	}
	return points, total
}

// aggregateByMonth produces one bucket per calendar month for the 12 months
// ending with the current month, in chronological order.
func aggregateByMonth(payments []models.Payment, today time.Time) ([]ChartPoint, float64) {
	startIndex := today.Year()*12 + int(today.Month()) - 1 - 11

	points := make([]ChartPoint, 12)
	for i := range points {
		m := time.Month((startIndex+i)%12 + 1)
		points[i].Label = MonthAbbr(m)
	}

	var total float64
	for _, p := range payments {
		d := Truncate(p.PaymentDate)
		idx := d.Year()*12 + int(d.Month()) - 1 - startIndex
		if idx < 0 || idx >= 12 {
			continue
		}
		points[idx].Amount += p.Amount
		total += p.Amount
	}
	return points, total
}

// roundCurrency rounds to two decimals using half-up rounding
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
