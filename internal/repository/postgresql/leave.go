package postgresql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveListColumns = `
	l.id, l.user_id, l.tenant_id, l.leave_type_id,
	l.start_date, l.end_date, l.total_days, l.reason,
	l.status, l.applied_by, l.approved_by, l.approved_at,
	l.rejected_by, l.rejected_at, l.rejection_reason,
	l.created_at, l.updated_at,
	lt.name AS leave_type_name,
	u.first_name, u.last_name, u.email,
	u1.first_name || ' ' || u1.last_name AS applied_by_name,
	u2.first_name || ' ' || u2.last_name AS approved_by_name,
	u3.first_name || ' ' || u3.last_name AS rejected_by_name`

const leaveListJoins = `
	FROM leaves l
	JOIN leave_types lt ON l.leave_type_id = lt.id
	JOIN users u ON l.user_id = u.id
	JOIN users u1 ON l.applied_by = u1.id
	LEFT JOIN users u2 ON l.approved_by = u2.id
	LEFT JOIN users u3 ON l.rejected_by = u3.id`

func scanLeaveRow(rows pgx.Rows) (leave.Leave, error) {
	var l leave.Leave
	err := rows.Scan(
		&l.ID, &l.UserID, &l.TenantID, &l.LeaveTypeID,
		&l.StartDate, &l.EndDate, &l.TotalDays, &l.Reason,
		&l.Status, &l.AppliedBy, &l.ApprovedBy, &l.ApprovedAt,
		&l.RejectedBy, &l.RejectedAt, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt,
		&l.LeaveTypeName,
		&l.FirstName, &l.LastName, &l.Email,
		&l.AppliedByName, &l.ApprovedByName, &l.RejectedByName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leaves (
			id, user_id, tenant_id, leave_type_id,
			start_date, end_date, total_days, reason,
			status, applied_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			'pending', $8, NOW(), NOW()
		) RETURNING id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.UserID, l.TenantID, l.LeaveTypeID,
		l.StartDate, l.EndDate, l.TotalDays, l.Reason,
		l.AppliedBy,
	).Scan(&l.ID, &l.Status, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return leave.Leave{}, err
	}

	return l, nil
}

// GetByIDAndTenant implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByIDAndTenant(ctx context.Context, id, tenantID string) (leave.Leave, error) {
	return r.getOne(ctx, `
		SELECT id, user_id, tenant_id, leave_type_id,
			   start_date, end_date, total_days, reason,
			   status, applied_by, approved_by, approved_at,
			   rejected_by, rejected_at, rejection_reason,
			   created_at, updated_at
		FROM leaves
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID)
}

// GetByIDTenantUser implements leave.LeaveRepository.
// Owner-scoped lookup: another user's leave resolves as not found.
func (r *leaveRepositoryImpl) GetByIDTenantUser(ctx context.Context, id, tenantID, userID string) (leave.Leave, error) {
	return r.getOne(ctx, `
		SELECT id, user_id, tenant_id, leave_type_id,
			   start_date, end_date, total_days, reason,
			   status, applied_by, approved_by, approved_at,
			   rejected_by, rejected_at, rejection_reason,
			   created_at, updated_at
		FROM leaves
		WHERE id = $1 AND tenant_id = $2 AND user_id = $3
	`, id, tenantID, userID)
}

func (r *leaveRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var l leave.Leave
	err := q.QueryRow(ctx, query, args...).Scan(
		&l.ID, &l.UserID, &l.TenantID, &l.LeaveTypeID,
		&l.StartDate, &l.EndDate, &l.TotalDays, &l.Reason,
		&l.Status, &l.AppliedBy, &l.ApprovedBy, &l.ApprovedAt,
		&l.RejectedBy, &l.RejectedAt, &l.RejectionReason,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	return l, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID, tenantID string) ([]leave.Leave, error) {
	query := "SELECT " + leaveListColumns + leaveListJoins + `
		WHERE l.user_id = $1 AND l.tenant_id = $2
		ORDER BY l.created_at DESC
	`
	return r.list(ctx, query, userID, tenantID)
}

// ListByTenant implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByTenant(ctx context.Context, tenantID string, status string) ([]leave.Leave, error) {
	query := "SELECT " + leaveListColumns + leaveListJoins + `
		WHERE l.tenant_id = $1`
	args := []interface{}{tenantID}

	if status != "" {
		query += " AND l.status = $2"
		args = append(args, status)
	}

	query += " ORDER BY l.created_at DESC"

	return r.list(ctx, query, args...)
}

// ListForReport implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListForReport(ctx context.Context, tenantID string, filter leave.ReportFilter) ([]leave.Leave, error) {
	query := "SELECT " + leaveListColumns + leaveListJoins + `
		WHERE l.tenant_id = $1`
	args := []interface{}{tenantID}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += " AND l.user_id = $" + itoa(len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += " AND l.start_date >= $" + itoa(len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += " AND l.end_date <= $" + itoa(len(args))
	}

	query += " ORDER BY l.start_date DESC"

	return r.list(ctx, query, args...)
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeaveRow(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

// MarkApproved implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) MarkApproved(ctx context.Context, id, approvedBy string, at time.Time) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leaves
		SET status = 'approved', approved_by = $1, approved_at = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := q.Exec(ctx, query, approvedBy, at, id)
	return err
}

// MarkRejected implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) MarkRejected(ctx context.Context, id, rejectedBy string, at time.Time, reason *string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leaves
		SET status = 'rejected', rejected_by = $1, rejected_at = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := q.Exec(ctx, query, rejectedBy, at, reason, id)
	return err
}

// MarkCancelled implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) MarkCancelled(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leaves
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1
	`
	_, err := q.Exec(ctx, query, id)
	return err
}
