package leave

import "context"

// LeaveRecordRepository - interface for the leave_records table. This is
// the store contract the accounting logic runs against; everything else
// treats it as an external collaborator.
type LeaveRecordRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByUserAndID(ctx context.Context, userID, id string) (LeaveRecord, error)
	// GetByUserAndYear returns the user's records for one year ordered by
	// start date.
	GetByUserAndYear(ctx context.Context, userID string, year int) ([]LeaveRecord, error)
	// GetByUserAndYearForUpdate is GetByUserAndYear with the rows locked for
	// the current transaction. Concurrent approvals of one user's records
	// serialize on this read, so each sees the decisions committed before it.
	GetByUserAndYearForUpdate(ctx context.Context, userID string, year int) ([]LeaveRecord, error)
	// ListPending returns pending records across all users ordered by start
	// date, with requester display data joined in.
	ListPending(ctx context.Context) ([]LeaveRecord, error)
	// UpdateStatus performs the pending->status transition. It must only
	// match rows still pending and report ErrAlreadyProcessed otherwise, so
	// the write itself is the conflict check.
	UpdateStatus(ctx context.Context, userID, id string, status Status, managerComment string) error
	// Delete removes a record that is still pending.
	Delete(ctx context.Context, userID, id string) error
}

// AllowanceRepository - interface for the allowances table. One integer of
// allotted workdays per user and year.
type AllowanceRepository interface {
	GetByUserAndYear(ctx context.Context, userID string, year int) (int, error)
	Upsert(ctx context.Context, userID string, year int, days int) error
}
