package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_balances (
			id, user_id, tenant_id, leave_type_id, year,
			allocated_days, used_days, pending_days,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.UserID, balance.TenantID, balance.LeaveTypeID, balance.Year,
		balance.AllocatedDays, balance.UsedDays, balance.PendingDays,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)

	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// GetByUserTypeYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByUserTypeYear(ctx context.Context, userID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, user_id, tenant_id, leave_type_id, year,
			   allocated_days, used_days, pending_days,
			   created_at, updated_at
		FROM leave_balances
		WHERE user_id = $1 AND leave_type_id = $2 AND year = $3
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, userID, leaveTypeID, year).Scan(
		&balance.ID, &balance.UserID, &balance.TenantID, &balance.LeaveTypeID, &balance.Year,
		&balance.AllocatedDays, &balance.UsedDays, &balance.PendingDays,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// ListByUserYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByUserYear(ctx context.Context, userID, tenantID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lb.id, lb.user_id, lb.tenant_id, lb.leave_type_id, lb.year,
			   lb.allocated_days, lb.used_days, lb.pending_days,
			   lb.created_at, lb.updated_at,
			   lt.name AS leave_type_name, lt.max_days
		FROM leave_balances lb
		JOIN leave_types lt ON lb.leave_type_id = lt.id
		WHERE lb.user_id = $1 AND lb.tenant_id = $2 AND lb.year = $3
		ORDER BY lt.name
	`

	rows, err := q.Query(ctx, query, userID, tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var balance leave.LeaveBalance
		if err := rows.Scan(
			&balance.ID, &balance.UserID, &balance.TenantID, &balance.LeaveTypeID, &balance.Year,
			&balance.AllocatedDays, &balance.UsedDays, &balance.PendingDays,
			&balance.CreatedAt, &balance.UpdatedAt,
			&balance.LeaveTypeName, &balance.MaxDays,
		); err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

// AddPendingDays implements leave.LeaveBalanceRepository.
// The availability check lives inside the UPDATE so two concurrent
// applications cannot both pass a stale read of the same balance row.
func (r *leaveBalanceRepositoryImpl) AddPendingDays(ctx context.Context, balanceID string, days float64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET pending_days = pending_days + $1,
			updated_at = NOW()
		WHERE id = $2
		AND (allocated_days - used_days - pending_days - $1) >= 0
	`

	result, err := q.Exec(ctx, query, days, balanceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}

	return nil
}

// ReleasePendingDays implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ReleasePendingDays(ctx context.Context, balanceID string, days float64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET pending_days = pending_days - $1,
			updated_at = NOW()
		WHERE id = $2
	`

	_, err := q.Exec(ctx, query, days, balanceID)
	return err
}

// MovePendingToUsed implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) MovePendingToUsed(ctx context.Context, balanceID string, days float64) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET pending_days = pending_days - $1,
			used_days = used_days + $1,
			updated_at = NOW()
		WHERE id = $2
	`

	_, err := q.Exec(ctx, query, days, balanceID)
	return err
}
