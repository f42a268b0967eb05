package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type allowanceRepositoryImpl struct {
	db *database.DB
}

func NewAllowanceRepository(db *database.DB) leave.AllowanceRepository {
	return &allowanceRepositoryImpl{db: db}
}

// GetByUserAndYear returns the allotted workdays for the user and year.
// A year without a row means no allowance was provisioned: zero.
func (r *allowanceRepositoryImpl) GetByUserAndYear(ctx context.Context, userID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT days
		FROM allowances
		WHERE user_id = $1 AND year = $2
	`

	var days int
	err := q.QueryRow(ctx, query, userID, year).Scan(&days)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return days, nil
}

func (r *allowanceRepositoryImpl) Upsert(ctx context.Context, userID string, year int, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowances (user_id, year, days, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, year)
		DO UPDATE SET days = EXCLUDED.days, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, userID, year, days)
	return err
}
