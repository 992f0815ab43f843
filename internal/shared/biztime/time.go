// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used to
// resolve date boundaries and wall-clock windows (terminal opening hours,
// history date filters).
//
// Design principles:
// - All time storage is in UTC
// - Wall-clock decisions must explicitly go through the business timezone
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no business timezone is configured.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) in business timezone,
// converted to UTC. Used for date-range queries over business days.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in business
// timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	endOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 23, 59, 59, 999999999, Location())
	return endOfDay.UTC()
}

// ToBizTimezone converts a UTC time to business timezone.
// Use this for wall-clock decisions such as opening-hours checks.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// ParseDateInBizTimezone parses a date string (YYYY-MM-DD) as business
// timezone midnight, then returns the UTC equivalent.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
