package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (
			id, user_id, start_date, end_date, days, year,
			status, comment, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		id, record.UserID, record.StartDate, record.EndDate, record.Days, record.Year,
		record.Status, record.Comment,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

// GetByUserAndID distinguishes a record owned by someone else from one that
// does not exist, so callers can answer 403 instead of 404.
func (r *leaveRecordRepositoryImpl) GetByUserAndID(ctx context.Context, userID, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, days, year,
			   status, comment, manager_comment, created_at, updated_at
		FROM leave_records
		WHERE id = $1
	`

	var rec leave.LeaveRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.StartDate, &rec.EndDate, &rec.Days, &rec.Year,
		&rec.Status, &rec.Comment, &rec.ManagerComment, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, err
	}
	if rec.UserID != userID {
		return leave.LeaveRecord{}, leave.ErrNotRecordOwner
	}

	return rec, nil
}

func (r *leaveRecordRepositoryImpl) GetByUserAndYear(ctx context.Context, userID string, year int) ([]leave.LeaveRecord, error) {
	return r.getByUserAndYear(ctx, userID, year, "")
}

// GetByUserAndYearForUpdate takes row locks so that concurrent approvals of
// one user's records queue up behind each other. A transaction that waited
// here re-reads the rows as the winner committed them.
func (r *leaveRecordRepositoryImpl) GetByUserAndYearForUpdate(ctx context.Context, userID string, year int) ([]leave.LeaveRecord, error) {
	return r.getByUserAndYear(ctx, userID, year, "FOR UPDATE")
}

func (r *leaveRecordRepositoryImpl) getByUserAndYear(ctx context.Context, userID string, year int, lock string) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, days, year,
			   status, comment, manager_comment, created_at, updated_at
		FROM leave_records
		WHERE user_id = $1 AND year = $2
		ORDER BY start_date
	` + lock

	rows, err := q.Query(ctx, query, userID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.StartDate, &rec.EndDate, &rec.Days, &rec.Year,
			&rec.Status, &rec.Comment, &rec.ManagerComment, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListPending is the approvals view: pending records of every user, oldest
// start date first, with the requester's display data joined in.
func (r *leaveRecordRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.start_date, lr.end_date, lr.days, lr.year,
			   lr.status, lr.comment, lr.manager_comment, lr.created_at, lr.updated_at,
			   COALESCE(NULLIF(u.display_name, ''), NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.email),
			   u.email
		FROM leave_records lr
		JOIN users u ON lr.user_id = u.id
		WHERE lr.status = 'pending'
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.StartDate, &rec.EndDate, &rec.Days, &rec.Year,
			&rec.Status, &rec.Comment, &rec.ManagerComment, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserDisplayName, &rec.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateStatus is the pending->approved/rejected transition. The WHERE
// clause only matches rows still pending, so a zero row count means the
// record was already processed (or never existed) and the caller lost the
// race: the write doubles as the compare-and-swap.
func (r *leaveRecordRepositoryImpl) UpdateStatus(ctx context.Context, userID, id string, status leave.Status, managerComment string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_records
		SET status = $1, manager_comment = $2, updated_at = NOW()
		WHERE user_id = $3 AND id = $4 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, status, managerComment, userID, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// Delete withdraws a record, only while it is still pending.
func (r *leaveRecordRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_records
		WHERE user_id = $1 AND id = $2 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrAlreadyProcessed
	}
	return nil
}
