package holiday

import (
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{1583, time.April, 10},
		{1961, time.April, 2},
		{2000, time.April, 23},
		{2016, time.March, 27},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2038, time.April, 25},
		{4099, time.April, 19},
	}
	for _, c := range cases {
		got := EasterSunday(c.year)
		if got.Year() != c.year || got.Month() != c.month || got.Day() != c.day {
			t.Errorf("EasterSunday(%d) = %s, want %d-%02d-%02d",
				c.year, got.Format("2006-01-02"), c.year, c.month, c.day)
		}
		if got.Location() != time.UTC {
			t.Errorf("EasterSunday(%d) not in UTC", c.year)
		}
	}
}

func TestForYearContainsFixedAndMovable(t *testing.T) {
	set := ForYear(2024, RegionDE)

	want := []string{
		"2024-01-01", // New Year
		"2024-05-01", // Labour Day
		"2024-10-03", // German Unity Day
		"2024-12-25",
		"2024-12-26",
		"2024-03-29", // Good Friday
		"2024-04-01", // Easter Monday
		"2024-05-09", // Ascension
		"2024-05-20", // Whit Monday
	}
	for _, iso := range want {
		if !set.Contains(iso) {
			t.Errorf("ForYear(2024) missing %s", iso)
		}
	}
	if len(set) != 9 {
		t.Errorf("ForYear(2024) has %d entries, want 9", len(set))
	}
}

func TestForYearSize(t *testing.T) {
	// 5 fixed + 4 Easter-relative dates. In 2008 Easter falls on March 23,
	// so Ascension lands on May 1 and collapses into Labour Day.
	for year := 2000; year <= 2040; year++ {
		want := 9
		if year == 2008 {
			want = 8
		}
		if got := len(ForYear(year, RegionDE)); got != want {
			t.Errorf("ForYear(%d) has %d entries, want %d", year, got, want)
		}
	}
}

func TestForYearRegionIsPlaceholder(t *testing.T) {
	// State codes must currently return the nationwide set unchanged.
	federal := ForYear(2025, RegionDE)
	for _, region := range []Region{"BY", "BW", "NW", ""} {
		regional := ForYear(2025, region)
		if len(regional) != len(federal) {
			t.Fatalf("ForYear(2025, %q) differs from nationwide set", region)
		}
		for iso := range federal {
			if !regional.Contains(iso) {
				t.Errorf("ForYear(2025, %q) missing %s", region, iso)
			}
		}
	}
}

func TestForRange(t *testing.T) {
	start := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	sets := ForRange(start, end, RegionDE)
	if len(sets) != 2 {
		t.Fatalf("ForRange across year boundary returned %d sets, want 2", len(sets))
	}
	if !sets[0].Contains("2024-12-25") {
		t.Error("first set should cover 2024")
	}
	if !sets[1].Contains("2025-01-01") {
		t.Error("second set should cover 2025")
	}

	if got := ForRange(end, start, RegionDE); got != nil {
		t.Errorf("inverted range should yield no sets, got %d", len(got))
	}
}
