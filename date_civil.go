//go:build civildate

package govukholidays

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// Date is a calendar date without time-of-day or timezone.
//
// This backend, selected by -tags civildate, stores a
// cloud.google.com/go/civil.Date. The exported API is identical to the
// default time.Time backend in date_std.go.
type Date struct {
	d civil.Date
}

// NewDate returns the date with the given calendar components, or a
// wrapped ErrInvalidDate if they do not name a real date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := civil.Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%04d-%02d-%02d", year, int(month), day)
	}
	return Date{d: d}, nil
}

// ParseDate parses an ISO-8601 calendar date such as "2025-12-25".
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%q", s)
	}
	return Date{d: d}, nil
}

// DateOf returns the calendar date of the given moment in its location.
func DateOf(t time.Time) Date {
	return Date{d: civil.DateOf(t)}
}

// Year returns the date's year.
func (d Date) Year() int { return d.d.Year }

// Month returns the date's month.
func (d Date) Month() time.Month { return d.d.Month }

// Day returns the date's day of the month.
func (d Date) Day() int { return d.d.Day }

// Weekday returns the date's day of the week.
func (d Date) Weekday() time.Weekday { return d.d.In(time.UTC).Weekday() }

// Next returns the following date.
func (d Date) Next() Date { return Date{d: d.d.AddDays(1)} }

// Previous returns the preceding date.
func (d Date) Previous() Date { return Date{d: d.d.AddDays(-1)} }

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.d.Before(other.d) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.d == (civil.Date{}) }
