package govukholidays

import (
	"bytes"
	"context"
	_ "embed"
)

// cachedData is a backup list of known bank holidays compiled into the
// binary, for testing or when network requests are not possible. It is
// refreshed manually with the "bankholidays fetch" command, so it lags
// the live feed: GOV.UK adds future years over time and has dropped some
// older years that snapshots may still carry. Cached years are never
// merged with freshly fetched ones.
//
//go:embed bank-holidays.json
var cachedData []byte

// CachedSource serves the snapshot bundled into the binary.
// Load performs no I/O.
type CachedSource struct{}

// Load decodes the embedded snapshot through the same decode path as the
// remote source. A corrupted snapshot surfaces as a *DecodeError rather
// than a panic.
func (CachedSource) Load(_ context.Context) (RawCalendar, error) {
	return decodeCalendar(bytes.NewReader(cachedData))
}
