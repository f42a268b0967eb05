package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether a record can no longer change. Transitions are
// forward-only: pending->approved or pending->rejected, nothing after that.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

const isoDate = "2006-01-02"

// LeaveRecord is one vacation request. StartDate and EndDate are inclusive
// calendar days at midnight UTC. Days is the chargeable workday count,
// computed once at creation and never recomputed; Year is the start date's
// calendar year and partitions a user's records.
type LeaveRecord struct {
	ID     string
	UserID string

	StartDate time.Time
	EndDate   time.Time
	Days      int
	Year      int

	Status         Status
	Comment        *string
	ManagerComment *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for the approvals view
	UserDisplayName *string
	UserEmail       *string
}

func (r LeaveRecord) StartISO() string { return r.StartDate.Format(isoDate) }
func (r LeaveRecord) EndISO() string   { return r.EndDate.Format(isoDate) }

// Overlaps is the closed-interval overlap test on inclusive date ranges:
// two ranges conflict unless one ends strictly before the other starts.
// Touching endpoints count as overlap (a same-day handover conflicts).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(aEnd.Before(bStart) || aStart.After(bEnd))
}

// OverlapsRecord applies Overlaps against an existing record.
func OverlapsRecord(start, end time.Time, rec LeaveRecord) bool {
	return Overlaps(start, end, rec.StartDate, rec.EndDate)
}

// UsedDays sums the chargeable days of approved records. Pending and
// rejected records never count against the allowance.
func UsedDays(records []LeaveRecord) int {
	used := 0
	for _, rec := range records {
		if rec.Status == StatusApproved {
			used += rec.Days
		}
	}
	return used
}

// Remaining is the allowance left after the used days, floored at zero.
func Remaining(allowance, used int) int {
	if remaining := allowance - used; remaining > 0 {
		return remaining
	}
	return 0
}
