package govukholidays

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// SourceURL is the authoritative GOV.UK bank holiday feed.
const SourceURL = "https://www.gov.uk/bank-holidays.json"

// DataSource supplies raw bank holiday data in the GOV.UK JSON schema.
//
// RemoteSource and CachedSource are the built-in implementations; this
// interface is also the integration surface for alternative sources such
// as a different endpoint, a local file or a test double. The engine does
// not assume a closed set of implementations.
type DataSource interface {
	Load(ctx context.Context) (RawCalendar, error)
}

// RawCalendar mirrors the GOV.UK JSON document: division keys mapping to
// per-division event lists. It is a transient decode target consumed by
// BuildCalendar and not retained afterwards.
type RawCalendar map[string]RawDivisionList

// RawDivisionList is one division's entry in the feed. Division repeats
// the enclosing map key.
type RawDivisionList struct {
	Division string     `json:"division"`
	Events   []RawEvent `json:"events"`
}

// RawEvent is one event as published in the feed. Date is an ISO-8601
// string; Notes and Bunting are accepted but not used by query semantics.
type RawEvent struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
	Bunting bool   `json:"bunting"`
}

// decodeCalendar is the single decode path shared by the remote and
// cached sources, so a schema change in the feed is caught identically by
// both. Division keys are a closed set; an unknown key or a key that
// contradicts its list's division field is a schema mismatch.
func decodeCalendar(r io.Reader) (RawCalendar, error) {
	var raw RawCalendar
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &DecodeError{Err: err}
	}
	for key, list := range raw {
		if _, err := ParseDivision(key); err != nil {
			return nil, &DecodeError{Err: err}
		}
		if list.Division != key {
			return nil, &DecodeError{Err: errors.Errorf("division %q listed under key %q", list.Division, key)}
		}
	}
	return raw, nil
}
