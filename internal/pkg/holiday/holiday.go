// Package holiday computes the public-holiday calendar used when counting
// chargeable vacation days. All computation is pure and uses UTC dates so
// day counts never drift across DST boundaries.
package holiday

import "time"

// Region selects a holiday region. Only the nationwide set ("DE") is
// produced today; the state codes are accepted as a placeholder so callers
// can already pass them, but they do not alter the output yet.
type Region string

const (
	RegionDE Region = "DE"
)

const isoDate = "2006-01-02"

// Set is a set of holiday dates keyed by ISO date string (YYYY-MM-DD).
type Set map[string]struct{}

// Contains reports whether the ISO date is a holiday in this set.
func (s Set) Contains(iso string) bool {
	_, ok := s[iso]
	return ok
}

func (s Set) add(t time.Time) {
	s[t.Format(isoDate)] = struct{}{}
}

// EasterSunday returns Easter Sunday of the given year at midnight UTC,
// computed with the Anonymous Gregorian (Gauss/Meeus-style) algorithm.
// Valid for Gregorian years 1583-4099.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ForYear returns the holiday set of the given year. The region parameter
// is reserved for future state-specific holidays and is currently ignored;
// every region receives the nationwide set.
func ForYear(year int, region Region) Set {
	_ = region // placeholder, see Region

	set := make(Set, 9)

	// Fixed-date holidays
	set.add(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	set.add(time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC))
	set.add(time.Date(year, time.October, 3, 0, 0, 0, 0, time.UTC))
	set.add(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC))
	set.add(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC))

	// Movable holidays anchored on Easter Sunday
	easter := EasterSunday(year)
	set.add(easter.AddDate(0, 0, -2)) // Good Friday
	set.add(easter.AddDate(0, 0, 1))  // Easter Monday
	set.add(easter.AddDate(0, 0, 39)) // Ascension
	set.add(easter.AddDate(0, 0, 50)) // Whit Monday

	return set
}

// ForRange returns one set per calendar year touched by [start, end].
// Callers hand the result to the workday counter so ranges crossing a
// year boundary still exclude holidays of both years.
func ForRange(start, end time.Time, region Region) []Set {
	if end.Before(start) {
		return nil
	}
	var sets []Set
	for y := start.Year(); y <= end.Year(); y++ {
		sets = append(sets, ForYear(y, region))
	}
	return sets
}
