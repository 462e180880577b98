package billing

import (
	"testing"
	"time"
)

func TestAddMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid month", date(2025, time.March, 15), date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"mar 31 clamps to apr 30", date(2025, time.March, 31), date(2025, time.April, 30)},
		{"dec rolls into next year", date(2025, time.December, 10), date(2026, time.January, 10)},
		{"dec 31 rolls into jan 31", date(2025, time.December, 31), date(2026, time.January, 31)},
		{"feb 28 keeps the day", date(2025, time.February, 28), date(2025, time.March, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonth(tt.in); !got.Equal(tt.want) {
				t.Errorf("AddMonth(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2025, time.March, 5), "Marzo 2025"},
		{date(2024, time.December, 31), "Diciembre 2024"},
		{date(2026, time.January, 1), "Enero 2026"},
	}

	for _, tt := range tests {
		if got := PeriodLabel(tt.in); got != tt.want {
			t.Errorf("PeriodLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(date(2025, time.March, 5)); got != "05/03" {
		t.Errorf("DayLabel() = %q, want %q", got, "05/03")
	}
	if got := DayLabel(date(2025, time.November, 23)); got != "23/11" {
		t.Errorf("DayLabel() = %q, want %q", got, "23/11")
	}
}
