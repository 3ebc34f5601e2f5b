package util

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

var emptyDateValues = map[string]struct{}{
	"":          {},
	"null":      {},
	"none":      {},
	"nan":       {},
	"nat":       {},
	"undefined": {},
}

// ParseDate is a best effort parse of a free-form date string. It
// returns nil for empty or unparseable input and never panics.
func ParseDate(s string) (out *time.Time) {
	s = strings.TrimSpace(s)
	if _, ok := emptyDateValues[strings.ToLower(s)]; ok {
		return nil
	}
	defer func() {
		// dateparse has panicked on malformed input in the past
		if r := recover(); r != nil {
			out = nil
		}
	}()

	t, err := dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// ParseDatePtr is ParseDate for nullable columns.
func ParseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return ParseDate(*s)
}

// DaysSince returns the number of whole days between t and now, floored
// like a timedelta. A nil t propagates as nil.
func DaysSince(now time.Time, t *time.Time) *int {
	if t == nil {
		return nil
	}
	days := int(math.Floor(now.Sub(*t).Hours() / 24))
	return &days
}

// MonthsSince approximates elapsed months as DaysSince / 30 (floor). It
// does not follow calendar month boundaries; see CalendarMonthsBetween.
func MonthsSince(now time.Time, t *time.Time) *int {
	days := DaysSince(now, t)
	if days == nil {
		return nil
	}
	months := floorDiv(*days, 30)
	return &months
}

// CalendarMonthsBetween counts month boundaries crossed between t and now
// using year/month subtraction only; the day of month is ignored.
func CalendarMonthsBetween(now, t time.Time) int {
	now = now.UTC()
	t = t.UTC()
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
