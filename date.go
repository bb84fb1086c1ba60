package govukholidays

import (
	"fmt"
	"time"
)

// dateLayout is the ISO-8601 calendar date format used by the GOV.UK feed.
const dateLayout = "2006-01-02"

// The Date methods below are backend-agnostic: they are written against
// the component accessors so that the time.Time and civil.Date backends
// (date_std.go, date_civil.go) behave identically.

// Today returns the current calendar date in the local timezone.
func Today() Date {
	return DateOf(time.Now())
}

// String formats the date as ISO-8601 (YYYY-MM-DD).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether d and other name the same calendar date.
func (d Date) Equal(other Date) bool {
	return !d.Before(other) && !other.Before(d)
}

// Compare returns -1, 0 or +1 according to whether d is before, equal to
// or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	default:
		return 0
	}
}

// MarshalText encodes the date as ISO-8601, for JSON and text formats.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes an ISO-8601 date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
