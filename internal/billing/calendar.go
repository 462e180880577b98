package billing

import (
	"fmt"
	"time"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthAbbrs = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// MonthName returns the Spanish month name for a 1-based month index
func MonthName(month time.Month) string {
	return monthNames[int(month)-1]
}

// MonthAbbr returns the abbreviated Spanish month name for a 1-based month index
func MonthAbbr(month time.Month) string {
	return monthAbbrs[int(month)-1]
}

// PeriodLabel formats a date as "Month Year" in Spanish, e.g. "Marzo 2025"
func PeriodLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(date.Month()), date.Year())
}

// DayLabel formats a date as dd/mm for chart labels
func DayLabel(date time.Time) string {
	return fmt.Sprintf("%02d/%02d", date.Day(), int(date.Month()))
}

// AddMonth advances a date by exactly one calendar month, clamping to the
// last valid day of the target month: Jan 31 becomes Feb 28 (29 in a leap
// year), never Mar 2.
func AddMonth(date time.Time) time.Time {
	year, month, day := date.Date()
	month++
	if month > time.December {
		month = time.January
		year++
	}
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the number of days in the given month
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
