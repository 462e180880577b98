// Package billing holds the pure billing-cycle logic: renewal status
// classification, income aggregation and calendar month arithmetic.
// Every function takes the reference date as an explicit parameter so the
// results are deterministic and testable with fixed dates.
package billing

import "time"

// Status is the renewal status of a client's billing cycle
type Status string

const (
	StatusActive     Status = "active"
	StatusNearExpiry Status = "near_expiry"
	StatusExpired    Status = "expired"
)

// nearExpiryDays is the inclusive window, in days, that counts as near expiry
const nearExpiryDays = 4

// Truncate drops the time-of-day component, keeping only the calendar date
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from one date to
// another. Time of day never affects the result.
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}

// Classify computes the renewal status of a client from its next payment date.
// Due today or within the next 4 days counts as near expiry; a date already
// passed is expired.
func Classify(nextPaymentDate, today time.Time) (Status, int) {
	days := DaysBetween(today, nextPaymentDate)
	switch {
	case days < 0:
		return StatusExpired, days
	case days <= nearExpiryDays:
		return StatusNearExpiry, days
	default:
		return StatusActive, days
	}
}
