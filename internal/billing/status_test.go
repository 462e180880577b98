package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	today := date(2025, time.March, 15)

	tests := []struct {
		name       string
		nextDue    time.Time
		wantStatus Status
		wantDays   int
	}{
		{
			name:       "due today is near expiry",
			nextDue:    today,
			wantStatus: StatusNearExpiry,
			wantDays:   0,
		},
		{
			name:       "due in 4 days is near expiry",
			nextDue:    date(2025, time.March, 19),
			wantStatus: StatusNearExpiry,
			wantDays:   4,
		},
		{
			name:       "due in 5 days is active",
			nextDue:    date(2025, time.March, 20),
			wantStatus: StatusActive,
			wantDays:   5,
		},
		{
			name:       "due yesterday is expired",
			nextDue:    date(2025, time.March, 14),
			wantStatus: StatusExpired,
			wantDays:   -1,
		},
		{
			name:       "overdue by 5 days",
			nextDue:    date(2025, time.March, 10),
			wantStatus: StatusExpired,
			wantDays:   -5,
		},
		{
			name:       "overdue by 10 days",
			nextDue:    date(2025, time.March, 5),
			wantStatus: StatusExpired,
			wantDays:   -10,
		},
		{
			name:       "far in the future is active",
			nextDue:    date(2025, time.June, 1),
			wantStatus: StatusActive,
			wantDays:   78,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, days := Classify(tt.nextDue, today)
			if status != tt.wantStatus {
				t.Errorf("Classify() status = %v, want %v", status, tt.wantStatus)
			}
			if days != tt.wantDays {
				t.Errorf("Classify() days = %d, want %d", days, tt.wantDays)
			}
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)
	nextDue := time.Date(2025, time.March, 16, 0, 1, 0, 0, time.UTC)

	status, days := Classify(nextDue, today)
	if status != StatusNearExpiry || days != 1 {
		t.Errorf("Classify() = (%v, %d), want (near_expiry, 1)", status, days)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2025, time.January, 1), date(2025, time.January, 1), 0},
		{"next day", date(2025, time.January, 1), date(2025, time.January, 2), 1},
		{"previous day", date(2025, time.January, 2), date(2025, time.January, 1), -1},
		{"across february", date(2025, time.February, 27), date(2025, time.March, 2), 3},
		{"across year", date(2024, time.December, 30), date(2025, time.January, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
