//go:build !civildate

package govukholidays

import (
	"time"

	"github.com/pkg/errors"
)

// Date is a calendar date without time-of-day or timezone.
//
// The default backend stores a midnight-UTC time.Time. Building with
// -tags civildate swaps the backend for cloud.google.com/go/civil.Date;
// the exported API is identical under either backend.
type Date struct {
	t time.Time
}

// NewDate returns the date with the given calendar components, or a
// wrapped ErrInvalidDate if they do not name a real date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%04d-%02d-%02d", year, int(month), day)
	}
	return Date{t: t}, nil
}

// ParseDate parses an ISO-8601 calendar date such as "2025-12-25".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%q", s)
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar date of the given moment in its location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the date's year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the date's month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the date's day of the month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the date's day of the week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Next returns the following date.
func (d Date) Next() Date { return Date{t: d.t.AddDate(0, 0, 1)} }

// Previous returns the preceding date.
func (d Date) Previous() Date { return Date{t: d.t.AddDate(0, 0, -1)} }

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }
