package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(iso string) time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint before", "2024-06-01", "2024-06-04", "2024-06-05", "2024-06-10", false},
		{"disjoint after", "2024-06-11", "2024-06-12", "2024-06-05", "2024-06-10", false},
		{"touching endpoint conflicts", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-10", true},
		{"touching start conflicts", "2024-06-10", "2024-06-12", "2024-06-05", "2024-06-10", true},
		{"contained", "2024-06-06", "2024-06-07", "2024-06-05", "2024-06-10", true},
		{"containing", "2024-06-01", "2024-06-30", "2024-06-05", "2024-06-10", true},
		{"identical", "2024-06-05", "2024-06-10", "2024-06-05", "2024-06-10", true},
		{"single day inside", "2024-06-05", "2024-06-05", "2024-06-05", "2024-06-05", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Overlaps(day(c.aStart), day(c.aEnd), day(c.bStart), day(c.bEnd))
			assert.Equal(t, c.want, got)
			// Overlap is symmetric.
			assert.Equal(t, c.want, Overlaps(day(c.bStart), day(c.bEnd), day(c.aStart), day(c.aEnd)))
		})
	}
}

func TestUsedDays(t *testing.T) {
	records := []LeaveRecord{
		{Days: 5, Status: StatusApproved},
		{Days: 3, Status: StatusPending},
		{Days: 2, Status: StatusRejected},
		{Days: 4, Status: StatusApproved},
	}
	assert.Equal(t, 9, UsedDays(records), "only approved records count")
	assert.Equal(t, 0, UsedDays(nil))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 21, Remaining(30, 9))
	assert.Equal(t, 0, Remaining(30, 30))
	assert.Equal(t, 0, Remaining(30, 35), "remaining is never negative")
	assert.Equal(t, 0, Remaining(0, 0))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
