package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRecordRepository
	leave.AllowanceRepository
	calculator *WorkdayCalculator
}

func NewLeaveService(db *database.DB, recordRepository leave.LeaveRecordRepository, allowanceRepository leave.AllowanceRepository, calculator *WorkdayCalculator) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                    db,
		LeaveRecordRepository: recordRepository,
		AllowanceRepository:   allowanceRepository,
		calculator:            calculator,
	}
}

// Preview implements leave.LeaveService.
func (s *LeaveServiceImpl) Preview(startDate, endDate string) leave.PreviewResponse {
	days, excluded := s.calculator.CountRange(startDate, endDate)
	if excluded == nil {
		excluded = []string{}
	}
	return leave.PreviewResponse{Days: days, ExcludedHolidays: excluded}
}

// Submit implements leave.LeaveService. The checks run in the order the
// request form surfaces them: range first, then overlap, then allowance.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRecordResponse, error) {
	days, _ := s.calculator.CountRange(req.StartDate, req.EndDate)
	if days <= 0 {
		// Unparseable range, inverted range, or only weekends/holidays.
		return leave.LeaveRecordResponse{}, leave.ErrInvalidRange
	}

	startDate, err := time.Parse(isoDate, req.StartDate)
	if err != nil {
		return leave.LeaveRecordResponse{}, leave.ErrInvalidRange
	}
	endDate, err := time.Parse(isoDate, req.EndDate)
	if err != nil {
		return leave.LeaveRecordResponse{}, leave.ErrInvalidRange
	}
	year := startDate.Year()

	existing, err := s.LeaveRecordRepository.GetByUserAndYear(ctx, req.UserID, year)
	if err != nil {
		return leave.LeaveRecordResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	// Pending and approved records both block a new overlapping request;
	// only rejected ones are free again.
	for _, rec := range existing {
		if rec.Status == leave.StatusRejected {
			continue
		}
		if leave.OverlapsRecord(startDate, endDate, rec) {
			return leave.LeaveRecordResponse{}, leave.ErrOverlappingLeave
		}
	}

	allowance, err := s.AllowanceRepository.GetByUserAndYear(ctx, req.UserID, year)
	if err != nil {
		return leave.LeaveRecordResponse{}, fmt.Errorf("failed to get allowance: %w", err)
	}
	remaining := leave.Remaining(allowance, leave.UsedDays(existing))
	if days > remaining {
		return leave.LeaveRecordResponse{}, leave.ErrAllowanceExceeded
	}

	record := leave.LeaveRecord{
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Year:      year,
		Status:    leave.StatusPending,
	}
	if req.Comment != "" {
		record.Comment = &req.Comment
	}

	created, err := s.LeaveRecordRepository.Create(ctx, record)
	if err != nil {
		return leave.LeaveRecordResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return leave.NewLeaveRecordResponse(created), nil
}

// Withdraw implements leave.LeaveService. Owners may delete their own
// records while still pending; processed records are immutable.
func (s *LeaveServiceImpl) Withdraw(ctx context.Context, userID, recordID string) error {
	rec, err := s.LeaveRecordRepository.GetByUserAndID(ctx, userID, recordID)
	if err != nil {
		return err
	}
	if rec.Status.IsTerminal() {
		return leave.ErrAlreadyProcessed
	}
	return s.LeaveRecordRepository.Delete(ctx, userID, recordID)
}

// Summary implements leave.LeaveService.
func (s *LeaveServiceImpl) Summary(ctx context.Context, userID string, year int) (leave.SummaryResponse, error) {
	records, err := s.LeaveRecordRepository.GetByUserAndYear(ctx, userID, year)
	if err != nil {
		return leave.SummaryResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	allowance, err := s.AllowanceRepository.GetByUserAndYear(ctx, userID, year)
	if err != nil {
		return leave.SummaryResponse{}, fmt.Errorf("failed to get allowance: %w", err)
	}

	used := leave.UsedDays(records)
	return leave.SummaryResponse{
		Year:      year,
		Allowance: allowance,
		Used:      used,
		Remaining: leave.Remaining(allowance, used),
		Records:   leave.NewLeaveRecordResponses(records),
	}, nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRecordResponse, error) {
	records, err := s.LeaveRecordRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave records: %w", err)
	}
	return leave.NewLeaveRecordResponses(records), nil
}

// Approve implements leave.LeaveService. The whole decision runs in one
// transaction: the locking read serializes concurrent approvals of one
// user's records, so the overlap check always sees decisions committed
// before it, and the pending-only UPDATE catches a double decision on the
// same record with ErrAlreadyProcessed.
func (s *LeaveServiceImpl) Approve(ctx context.Context, userID, recordID, managerComment string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.LeaveRecordRepository.GetByUserAndID(txCtx, userID, recordID)
		if err != nil {
			return err
		}

		// Two approved records of one user must never overlap. Pending
		// requests may overlap each other until one of them is approved,
		// which is why this runs here and not at submission. The statuses
		// checked here come from the locked rows, not the read above: a
		// transaction that waited on the lock sees what the winner wrote.
		others, err := s.LeaveRecordRepository.GetByUserAndYearForUpdate(txCtx, userID, rec.Year)
		if err != nil {
			return fmt.Errorf("failed to list leave records: %w", err)
		}
		for _, other := range others {
			if other.ID == rec.ID {
				if other.Status.IsTerminal() {
					return leave.ErrAlreadyProcessed
				}
				continue
			}
			if other.Status != leave.StatusApproved {
				continue
			}
			if leave.OverlapsRecord(rec.StartDate, rec.EndDate, other) {
				return leave.ErrApprovedOverlap
			}
		}

		return s.LeaveRecordRepository.UpdateStatus(txCtx, userID, recordID, leave.StatusApproved, managerComment)
	})
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, userID, recordID, managerComment string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.LeaveRecordRepository.GetByUserAndID(txCtx, userID, recordID)
		if err != nil {
			return err
		}
		if rec.Status.IsTerminal() {
			return leave.ErrAlreadyProcessed
		}

		return s.LeaveRecordRepository.UpdateStatus(txCtx, userID, recordID, leave.StatusRejected, managerComment)
	})
}
