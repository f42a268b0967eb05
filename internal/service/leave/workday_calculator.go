package leave

import (
	"time"

	"github.com/leavedesk/leave-backend-go/internal/pkg/holiday"
)

const isoDate = "2006-01-02"

// WorkdayCalculator counts the chargeable workdays of a date range:
// every day that is neither a weekend day nor a public holiday.
type WorkdayCalculator struct {
	region holiday.Region
}

func NewWorkdayCalculator(region holiday.Region) *WorkdayCalculator {
	return &WorkdayCalculator{region: region}
}

// Count iterates the inclusive range and returns the chargeable day count
// plus the excluded holiday dates in chronological order. Weekend
// exclusions are not reported.
//
// Unparseable input or an end before the start yields (0, nil) instead of
// an error: the range comes from a form the user may still be filling in,
// and a zero count already blocks submission.
func (c *WorkdayCalculator) Count(startDate, endDate string, sets ...holiday.Set) (int, []string) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return 0, nil
	}
	end, err := time.Parse(isoDate, endDate)
	if err != nil {
		return 0, nil
	}
	if end.Before(start) {
		return 0, nil
	}

	var excluded []string
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		iso := d.Format(isoDate)
		if containsHoliday(sets, iso) {
			excluded = append(excluded, iso)
			continue
		}
		days++
	}

	return days, excluded
}

// CountRange is Count with the holiday sets derived from the range itself,
// one per calendar year the range touches.
func (c *WorkdayCalculator) CountRange(startDate, endDate string) (int, []string) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return 0, nil
	}
	end, err := time.Parse(isoDate, endDate)
	if err != nil {
		return 0, nil
	}
	return c.Count(startDate, endDate, holiday.ForRange(start, end, c.region)...)
}

func containsHoliday(sets []holiday.Set, iso string) bool {
	for _, s := range sets {
		if s.Contains(iso) {
			return true
		}
	}
	return false
}
