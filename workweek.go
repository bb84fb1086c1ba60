package govukholidays

import "time"

// WorkWeek decides whether a date is a working day before bank holidays
// are considered. Implement it to model part-time or non-standard weeks.
type WorkWeek interface {
	IsWorkDay(date Date) bool
}

// MonToFri is the typical Monday to Friday working week.
type MonToFri struct{}

// IsWorkDay reports whether date falls on Monday through Friday.
func (MonToFri) IsWorkDay(date Date) bool {
	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}

// IsWorkDay reports whether date is a working day: accepted by the
// calendar's WorkWeek and not a bank holiday under the division filter.
func (c *Calendar) IsWorkDay(date Date, division Division) bool {
	return c.workWeek.IsWorkDay(date) && !c.IsHoliday(date, division)
}

// NextWorkDay returns the first working day strictly after the given
// date. NB: loops forever if the WorkWeek never accepts a day.
func (c *Calendar) NextWorkDay(after Date, division Division) Date {
	date := after.Next()
	for !c.IsWorkDay(date, division) {
		date = date.Next()
	}
	return date
}

// PreviousWorkDay returns the last working day strictly before the given
// date. NB: loops forever if the WorkWeek never accepts a day.
func (c *Calendar) PreviousWorkDay(before Date, division Division) Date {
	date := before.Previous()
	for !c.IsWorkDay(date, division) {
		date = date.Previous()
	}
	return date
}

// WorkDaysBetween counts the working days in the inclusive range
// [from, to]. Returns 0 if from is after to.
func (c *Calendar) WorkDaysBetween(from, to Date, division Division) int {
	count := 0
	for date := from; !date.After(to); date = date.Next() {
		if c.IsWorkDay(date, division) {
			count++
		}
	}
	return count
}
