// Package dates provides calendar-date helpers for the booking engine.
// Dates cross the API boundary as YYYY-MM-DD day keys and are handled
// internally as UTC-midnight instants. Stay ranges are half-open:
// [start, end), so the checkout day is not occupied.
package dates

import (
	"fmt"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
)

// DayKeyLayout is the wire format for calendar dates.
const DayKeyLayout = "2006-01-02"

// ParseDayKey converts a YYYY-MM-DD key to its UTC-midnight instant.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad day key %q", apperrors.ErrInvalidDateRange, key)
	}
	return t, nil
}

// FormatDayKey converts an instant to its YYYY-MM-DD key in UTC.
func FormatDayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// TruncateToDay drops the time-of-day portion, keeping the UTC calendar date.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRange parses a half-open [start, end) pair of day keys and validates
// that end is strictly after start.
func ParseRange(startKey, endKey string) (time.Time, time.Time, error) {
	start, err := ParseDayKey(startKey)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDayKey(endKey)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s must be after start %s", apperrors.ErrInvalidDateRange, endKey, startKey)
	}
	return start, end, nil
}

// NightsBetween returns the number of whole nights in [start, end).
// Both instants are truncated to UTC midnight before differencing.
func NightsBetween(start, end time.Time) int {
	d := TruncateToDay(end).Sub(TruncateToDay(start))
	return int(d / (24 * time.Hour))
}

// RangesOverlap reports whether two half-open ranges [s1,e1) and [s2,e2)
// conflict. A range ending on day D does not conflict with one starting on D.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// EnumerateDayKeys returns every day key from startKey through endKey
// inclusive, in calendar order. Returns an error if the keys are malformed
// or endKey precedes startKey.
func EnumerateDayKeys(startKey, endKey string) ([]string, error) {
	start, err := ParseDayKey(startKey)
	if err != nil {
		return nil, err
	}
	end, err := ParseDayKey(endKey)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s precedes start %s", apperrors.ErrInvalidDateRange, endKey, startKey)
	}
	keys := make([]string, 0, NightsBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, FormatDayKey(d))
	}
	return keys, nil
}
