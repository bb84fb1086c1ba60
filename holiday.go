package govukholidays

// BankHoliday is a single bank holiday event.
//
// An event listed by GOV.UK under several divisions with the same date
// and title appears here once, with Divisions carrying every division
// that observes it.
type BankHoliday struct {
	// Date of the bank holiday. For substitute days this is the observed
	// date, not the nominal one.
	Date Date
	// Title of the bank holiday, e.g. "Boxing Day".
	Title string
	// Notes carries the source's free-text annotation, typically blank
	// or "Substitute day".
	Notes string
	// Substitute reports whether the holiday was moved from its nominal
	// date, e.g. because it fell on a weekend.
	Substitute bool
	// Bunting mirrors the source's bunting flag.
	Bunting bool
	// Divisions observing this holiday, in GOV.UK publication order.
	// Never empty.
	Divisions []Division
}

// ObservedIn reports whether the holiday applies in the given division.
func (h BankHoliday) ObservedIn(division Division) bool {
	for _, d := range h.Divisions {
		if d == division {
			return true
		}
	}
	return false
}

// CommonToAllDivisions reports whether every division observes this
// holiday on this date under the same title.
func (h BankHoliday) CommonToAllDivisions() bool {
	return len(h.Divisions) == len(Divisions())
}

// matches applies the division filter used by Calendar queries: Common
// selects holidays observed everywhere, a concrete division selects
// holidays observed there.
func (h BankHoliday) matches(division Division) bool {
	if division == Common {
		return h.CommonToAllDivisions()
	}
	return h.ObservedIn(division)
}
