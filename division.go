package govukholidays

import "fmt"

// Division identifies a part of the UK with its own bank holiday list.
// GOV.UK publishes separate lists for three divisions.
//
// The zero value Common is not a division itself: passed to a Calendar
// query it selects only bank holidays observed in all three divisions.
type Division int

const (
	// Common selects bank holidays observed in every division.
	Common Division = iota
	// EnglandAndWales covers England and Wales.
	EnglandAndWales
	// Scotland covers Scotland.
	Scotland
	// NorthernIreland covers Northern Ireland.
	NorthernIreland
)

// Divisions returns all known divisions in the order GOV.UK publishes them.
func Divisions() [3]Division {
	return [3]Division{EnglandAndWales, Scotland, NorthernIreland}
}

// String returns the English name of the division.
func (d Division) String() string {
	switch d {
	case EnglandAndWales:
		return "England and Wales"
	case Scotland:
		return "Scotland"
	case NorthernIreland:
		return "Northern Ireland"
	case Common:
		return "all divisions"
	default:
		return fmt.Sprintf("Division(%d)", int(d))
	}
}

// Slug returns the identifier GOV.UK uses for this division as a key in
// the JSON feed, e.g. "england-and-wales". Common has no slug.
func (d Division) Slug() string {
	switch d {
	case EnglandAndWales:
		return "england-and-wales"
	case Scotland:
		return "scotland"
	case NorthernIreland:
		return "northern-ireland"
	default:
		return ""
	}
}

// ParseDivision maps a GOV.UK division key to a Division.
func ParseDivision(slug string) (Division, error) {
	for _, d := range Divisions() {
		if d.Slug() == slug {
			return d, nil
		}
	}
	return Common, fmt.Errorf("unknown division %q", slug)
}

// MarshalText encodes the division as its GOV.UK slug.
func (d Division) MarshalText() ([]byte, error) {
	slug := d.Slug()
	if slug == "" {
		return nil, fmt.Errorf("division %d has no slug", int(d))
	}
	return []byte(slug), nil
}

// UnmarshalText decodes a GOV.UK division slug.
func (d *Division) UnmarshalText(text []byte) error {
	parsed, err := ParseDivision(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
