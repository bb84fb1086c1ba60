// Package govukholidays provides the official list of United Kingdom bank
// holidays as published by GOV.UK (https://www.gov.uk/bank-holidays).
//
// GOV.UK lists bank holidays separately for three "divisions": England
// and Wales, Scotland and Northern Ireland. Query methods take a
// Division; the zero value Common considers only bank holidays observed
// in all three divisions.
//
// Data is loaded either live from the GOV.UK JSON feed or from a snapshot
// embedded in the binary. Falling back from one to the other is an
// explicit caller decision, not built-in behavior:
//
//	cal, err := govukholidays.Load(ctx)
//	if err != nil {
//		cal, err = govukholidays.Cached()
//	}
//
//	today := govukholidays.Today()
//	cal.IsHoliday(today, govukholidays.Common)
//	cal.NextHoliday(today, govukholidays.Scotland)
//
// The feed only extends a year or two into the future and the embedded
// snapshot is refreshed manually, so queries past the end of the dataset
// report absence rather than an error.
//
// By default Date is backed by time.Time; building with -tags civildate
// backs it with cloud.google.com/go/civil instead. Query semantics are
// identical under either backend.
package govukholidays

import (
	"context"
	"sort"
	"time"
)

// Calendar answers date and range queries over a fixed set of bank
// holidays. It is built once from a DataSource and immutable afterwards,
// so it may be shared freely across goroutines without locking;
// refreshing means building a new Calendar.
type Calendar struct {
	holidays []BankHoliday // sorted by date ascending
	workWeek WorkWeek
}

// New builds a calendar from any DataSource, with the standard Monday to
// Friday working week.
func New(ctx context.Context, source DataSource) (*Calendar, error) {
	return NewWithWorkWeek(ctx, source, MonToFri{})
}

// NewWithWorkWeek builds a calendar from any DataSource with a custom
// working week for the work-day queries.
func NewWithWorkWeek(ctx context.Context, source DataSource, workWeek WorkWeek) (*Calendar, error) {
	raw, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildCalendar(raw, workWeek)
}

// Load fetches the live GOV.UK feed and builds a calendar from it. It
// does not fall back to the embedded snapshot on failure; combine with
// Cached explicitly for that policy.
func Load(ctx context.Context) (*Calendar, error) {
	return New(ctx, NewRemoteSource())
}

// Cached builds a calendar from the embedded snapshot, without network
// I/O. See CachedSource for the snapshot's freshness caveats.
func Cached() (*Calendar, error) {
	return New(context.Background(), CachedSource{})
}

// Holidays returns the bank holidays observed in the given division, or
// with Common only those observed in all three, sorted by date ascending.
func (c *Calendar) Holidays(division Division) []BankHoliday {
	var out []BankHoliday
	for _, h := range c.holidays {
		if h.matches(division) {
			out = append(out, h)
		}
	}
	return out
}

// Holiday returns the bank holiday on the given date under the division
// filter. ok is false if the date is not a bank holiday there.
func (c *Calendar) Holiday(date Date, division Division) (holiday BankHoliday, ok bool) {
	for i := c.searchDate(date); i < len(c.holidays) && c.holidays[i].Date.Equal(date); i++ {
		if c.holidays[i].matches(division) {
			return c.holidays[i], true
		}
	}
	return BankHoliday{}, false
}

// IsHoliday reports whether date is a bank holiday under the division
// filter.
func (c *Calendar) IsHoliday(date Date, division Division) bool {
	_, ok := c.Holiday(date, division)
	return ok
}

// NextHoliday returns the first bank holiday strictly after the given
// date under the division filter. ok is false when the dataset does not
// extend far enough into the future; that is expected near the end of
// the published years, not an error.
func (c *Calendar) NextHoliday(after Date, division Division) (holiday BankHoliday, ok bool) {
	for i := c.searchDate(after.Next()); i < len(c.holidays); i++ {
		if c.holidays[i].matches(division) {
			return c.holidays[i], true
		}
	}
	return BankHoliday{}, false
}

// PreviousHoliday returns the last bank holiday strictly before the
// given date under the division filter. ok is false when the dataset
// does not extend far enough into the past.
func (c *Calendar) PreviousHoliday(before Date, division Division) (holiday BankHoliday, ok bool) {
	for i := c.searchDate(before) - 1; i >= 0; i-- {
		if c.holidays[i].matches(division) {
			return c.holidays[i], true
		}
	}
	return BankHoliday{}, false
}

// HolidaysBetween returns the bank holidays in the inclusive range
// [from, to] under the division filter, sorted by date ascending.
// Returns nil if from is after to.
func (c *Calendar) HolidaysBetween(from, to Date, division Division) []BankHoliday {
	if to.Before(from) {
		return nil
	}
	var out []BankHoliday
	for i := c.searchDate(from); i < len(c.holidays) && !c.holidays[i].Date.After(to); i++ {
		if c.holidays[i].matches(division) {
			out = append(out, c.holidays[i])
		}
	}
	return out
}

// HolidaysInYear returns the bank holidays in the given year under the
// division filter, sorted by date ascending.
func (c *Calendar) HolidaysInYear(year int, division Division) []BankHoliday {
	from, _ := NewDate(year, time.January, 1)
	to, _ := NewDate(year, time.December, 31)
	return c.HolidaysBetween(from, to, division)
}

// searchDate returns the index of the first holiday dated on or after
// the given date.
func (c *Calendar) searchDate(date Date) int {
	return sort.Search(len(c.holidays), func(i int) bool {
		return !c.holidays[i].Date.Before(date)
	})
}
