package govukholidays

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidDate is returned (wrapped) when date components or a date
// string do not name a real calendar date.
var ErrInvalidDate = errors.New("invalid date")

// TransportError reports that the remote source could not be reached at
// all: a network, DNS or TLS failure before any HTTP response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bank holiday request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response from the remote source.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bank holiday request returned HTTP status %d", e.Code)
}

// DecodeError reports a payload that is not valid GOV.UK bank holiday
// JSON, whether it came from the remote feed, the embedded snapshot or a
// custom source.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bank holiday data could not be decoded: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BuildError reports a raw event that could not be normalized into a
// BankHoliday, typically because its date is unparseable. A single bad
// event fails the whole build.
type BuildError struct {
	Division string // division key the event was listed under
	Title    string
	Err      error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("bank holiday %q in %s: %v", e.Title, e.Division, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
