// Package rental holds the booking and catalog business rules: rental-day
// and price arithmetic, date-range validation, the catalog filter/sort
// pipeline, and the booking form state machine.
package rental

import (
	"errors"
	"time"
)

// Date-range validation failures.
var (
	ErrMissingDates       = errors.New("missing dates")
	ErrPickupInPast       = errors.New("pickup in past")
	ErrReturnBeforePickup = errors.New("return before pickup")
)

// dateLayouts are the accepted date input formats, tried in order.
// Date-only first since that is what the booking form submits.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"}

// parseDay parses s and normalizes it to midnight UTC. Time-of-day
// components never influence day arithmetic.
func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// RentalDays returns the absolute whole-day difference between pickup and
// dropoff. Either input being empty or unparseable yields 0, matching the
// booking form's behavior of showing no total until both dates are set.
func RentalDays(pickup, dropoff string) int {
	p, ok := parseDay(pickup)
	if !ok {
		return 0
	}
	d, ok := parseDay(dropoff)
	if !ok {
		return 0
	}
	days := int(d.Sub(p).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

// TotalPrice is the rental total: days times the daily rate. No rounding
// and no currency conversion.
func TotalPrice(days int, dailyRate float64) float64 {
	return float64(days) * dailyRate
}

// ValidateDateRange checks a pickup/dropoff pair against today's date.
// It returns ErrMissingDates, ErrPickupInPast or ErrReturnBeforePickup,
// or nil for an acceptable range.
func ValidateDateRange(pickup, dropoff string) error {
	return validateDateRangeAt(pickup, dropoff, time.Now())
}

func validateDateRangeAt(pickup, dropoff string, now time.Time) error {
	p, ok := parseDay(pickup)
	if !ok {
		return ErrMissingDates
	}
	d, ok := parseDay(dropoff)
	if !ok {
		return ErrMissingDates
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if p.Before(today) {
		return ErrPickupInPast
	}
	if !d.After(p) {
		return ErrReturnBeforePickup
	}
	return nil
}
