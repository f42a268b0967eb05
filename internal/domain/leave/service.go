package leave

import "context"

type LeaveService interface {
	// Preview computes chargeable workdays for a candidate range without
	// touching the store. Invalid ranges yield zero days, not an error.
	Preview(startDate, endDate string) PreviewResponse

	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRecordResponse, error)
	Withdraw(ctx context.Context, userID, recordID string) error
	Summary(ctx context.Context, userID string, year int) (SummaryResponse, error)

	// Manager operations
	ListPending(ctx context.Context) ([]LeaveRecordResponse, error)
	Approve(ctx context.Context, userID, recordID, managerComment string) error
	Reject(ctx context.Context, userID, recordID, managerComment string) error
}
