package govukholidays

import (
	"sort"
	"strings"
)

// substituteNote is the annotation GOV.UK attaches to moved holidays.
const substituteNote = "Substitute day"

// BuildCalendar normalizes raw GOV.UK data into a queryable Calendar
// with the standard Monday to Friday working week.
//
// Events listed under several divisions with the same date and title are
// coalesced into one BankHoliday carrying the union of those divisions;
// this is what gives Common queries their meaning. The coalescing key is
// an exact (date, title) match. A single event with an unparseable date
// fails the whole build with a *BuildError.
func BuildCalendar(raw RawCalendar) (*Calendar, error) {
	return buildCalendar(raw, MonToFri{})
}

func buildCalendar(raw RawCalendar, workWeek WorkWeek) (*Calendar, error) {
	type key struct {
		date  string
		title string
	}

	var holidays []BankHoliday
	index := make(map[key]int)

	for _, division := range Divisions() {
		list, ok := raw[division.Slug()]
		if !ok {
			continue
		}
		for _, event := range list.Events {
			k := key{date: event.Date, title: event.Title}
			if i, ok := index[k]; ok {
				if !holidays[i].ObservedIn(division) {
					holidays[i].Divisions = append(holidays[i].Divisions, division)
				}
				continue
			}
			date, err := ParseDate(event.Date)
			if err != nil {
				return nil, &BuildError{Division: division.Slug(), Title: event.Title, Err: err}
			}
			index[k] = len(holidays)
			holidays = append(holidays, BankHoliday{
				Date:       date,
				Title:      event.Title,
				Notes:      event.Notes,
				Substitute: strings.Contains(event.Notes, substituteNote),
				Bunting:    event.Bunting,
				Divisions:  []Division{division},
			})
		}
	}

	// Stable sort keeps same-date holidays in publication order.
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return &Calendar{holidays: holidays, workWeek: workWeek}, nil
}
