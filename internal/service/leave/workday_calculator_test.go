package leave

import (
	"testing"

	"github.com/leavedesk/leave-backend-go/internal/pkg/holiday"
	"github.com/stretchr/testify/assert"
)

func TestWorkdayCalculator_Count_ChristmasWeek(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// Dec 23 2024 is a Monday. 25th and 26th are holidays, 28th/29th are
	// the weekend.
	days, excluded := calc.Count("2024-12-23", "2024-12-27", holiday.ForYear(2024, holiday.RegionDE))
	assert.Equal(t, 3, days)
	assert.Equal(t, []string{"2024-12-25", "2024-12-26"}, excluded)
}

func TestWorkdayCalculator_Count_WeekendOnly(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// Jan 6/7 2024 is a Saturday and Sunday. Weekends are excluded but
	// never reported.
	days, excluded := calc.Count("2024-01-06", "2024-01-07")
	assert.Equal(t, 0, days)
	assert.Empty(t, excluded)
}

func TestWorkdayCalculator_Count_InvalidInput(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2024-12-27", "2024-12-23"},
		{"empty start", "", "2024-12-23"},
		{"empty end", "2024-12-23", ""},
		{"garbage", "not-a-date", "2024-12-23"},
		{"german format", "23.12.2024", "27.12.2024"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			days, excluded := calc.Count(c.start, c.end, holiday.ForYear(2024, holiday.RegionDE))
			assert.Equal(t, 0, days)
			assert.Empty(t, excluded)
		})
	}
}

func TestWorkdayCalculator_Count_SingleDay(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// A single chargeable Tuesday.
	days, excluded := calc.Count("2024-06-04", "2024-06-04", holiday.ForYear(2024, holiday.RegionDE))
	assert.Equal(t, 1, days)
	assert.Empty(t, excluded)

	// A single holiday.
	days, excluded = calc.Count("2024-05-01", "2024-05-01", holiday.ForYear(2024, holiday.RegionDE))
	assert.Equal(t, 0, days)
	assert.Equal(t, []string{"2024-05-01"}, excluded)
}

func TestWorkdayCalculator_CountRange_CrossYear(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// Mon Dec 30 2024 .. Thu Jan 2 2025. Jan 1 is a holiday of the second
	// year's set; the counter must pick up both years.
	days, excluded := calc.CountRange("2024-12-30", "2025-01-02")
	assert.Equal(t, 3, days) // Dec 30, Dec 31, Jan 2
	assert.Equal(t, []string{"2025-01-01"}, excluded)
}

func TestWorkdayCalculator_Count_FullWeek(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// Mon Jun 3 .. Sun Jun 9 2024: five workdays, no holidays.
	days, excluded := calc.Count("2024-06-03", "2024-06-09", holiday.ForYear(2024, holiday.RegionDE))
	assert.Equal(t, 5, days)
	assert.Empty(t, excluded)
}

func TestWorkdayCalculator_Count_HolidayOrder(t *testing.T) {
	calc := NewWorkdayCalculator(holiday.RegionDE)

	// Spanning Easter 2024 (Mar 29 Good Friday, Apr 1 Easter Monday):
	// excluded holidays come back in chronological order.
	_, excluded := calc.Count("2024-03-25", "2024-04-05", holiday.ForYear(2024, holiday.RegionDE))
	assert.Equal(t, []string{"2024-03-29", "2024-04-01"}, excluded)
}
