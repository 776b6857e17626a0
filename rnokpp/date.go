package rnokpp

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the output format for every date this package emits.
const DateLayout = "2006-01-02"

// MaxDayOffset is the largest day count that fits in five digits.
const MaxDayOffset = 99999

const secondsPerDay = 24 * 60 * 60

// Epoch is day zero of the date-of-birth field.
var Epoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// explicitLayouts are tried before falling back to dateparse. The dotted
// day-first form is how dates are usually written in Ukraine; dateparse
// would otherwise read it month-first. Day and month may have one or two
// digits.
var explicitLayouts = []string{
	DateLayout,
	"2.1.2006",
}

// DateFromOffset returns the calendar date offset days after the epoch.
func DateFromOffset(offset int) (time.Time, error) {
	if offset < 0 || offset > MaxDayOffset {
		return time.Time{}, dateRange("day offset %d outside 0..%d", offset, MaxDayOffset)
	}
	return Epoch.AddDate(0, 0, offset), nil
}

// OffsetFromDate returns the number of days from the epoch to the calendar
// date of t (taken in t's own location).
func OffsetFromDate(t time.Time) (int, error) {
	d := Date(t)
	days := (d.Unix() - Epoch.Unix()) / secondsPerDay
	if days < 0 || days > MaxDayOffset {
		return 0, dateRange("date %s cannot be encoded", FormatDate(d))
	}
	return int(days), nil
}

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate accepts an ISO-8601 date, a day-first dotted date
// (31.12.1999 or 1.2.2000) or anything dateparse recognises, and returns the calendar
// date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalidParameter(nil, "empty date")
	}
	for _, layout := range explicitLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t), nil
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, invalidParameter(err, "cannot parse date %q", s)
	}
	return Date(t), nil
}
