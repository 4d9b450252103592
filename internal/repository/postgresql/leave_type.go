package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// GetActiveByIDAndTenant implements leave.LeaveTypeRepository.
// Cross-tenant and inactive types both resolve as unknown.
func (r *leaveTypeRepositoryImpl) GetActiveByIDAndTenant(ctx context.Context, id, tenantID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, name, description, max_days, is_paid,
			   requires_approval, is_active, created_at, updated_at
		FROM leave_types
		WHERE id = $1 AND tenant_id = $2 AND is_active = true
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&lt.ID, &lt.TenantID, &lt.Name, &lt.Description, &lt.MaxDays, &lt.IsPaid,
		&lt.RequiresApproval, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrUnknownLeaveType
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

// ListActiveByTenant implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) ListActiveByTenant(ctx context.Context, tenantID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, name, description, max_days, is_paid,
			   requires_approval, is_active, created_at, updated_at
		FROM leave_types
		WHERE tenant_id = $1 AND is_active = true
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.TenantID, &lt.Name, &lt.Description, &lt.MaxDays, &lt.IsPaid,
			&lt.RequiresApproval, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}

	return types, nil
}
