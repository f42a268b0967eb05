package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("Leave record not found")
	ErrInvalidRange      = errors.New("Date range is not ready to submit")
	ErrOverlappingLeave  = errors.New("Range overlaps an existing request")
	ErrApprovedOverlap   = errors.New("Range overlaps an already approved leave")
	ErrAllowanceExceeded = errors.New("Remaining allowance is not sufficient")
	ErrAlreadyProcessed  = errors.New("Leave record already processed")
	ErrNotRecordOwner    = errors.New("Leave record belongs to another user")
)
