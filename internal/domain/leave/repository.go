package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	GetActiveByIDAndTenant(ctx context.Context, id, tenantID string) (LeaveType, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]LeaveType, error)
}

// LeaveBalanceRepository - interface for leave_balances table.
// AddPendingDays carries the availability guard: the update only applies while
// allocated_days - used_days - pending_days - days >= 0, so two concurrent
// applications cannot both reserve the same remaining days.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByUserTypeYear(ctx context.Context, userID, leaveTypeID string, year int) (LeaveBalance, error)
	ListByUserYear(ctx context.Context, userID, tenantID string, year int) ([]LeaveBalance, error)
	AddPendingDays(ctx context.Context, balanceID string, days float64) error
	ReleasePendingDays(ctx context.Context, balanceID string, days float64) error
	MovePendingToUsed(ctx context.Context, balanceID string, days float64) error
}

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByIDAndTenant(ctx context.Context, id, tenantID string) (Leave, error)
	GetByIDTenantUser(ctx context.Context, id, tenantID, userID string) (Leave, error)
	ListByUser(ctx context.Context, userID, tenantID string) ([]Leave, error)
	ListByTenant(ctx context.Context, tenantID string, status string) ([]Leave, error)
	ListForReport(ctx context.Context, tenantID string, filter ReportFilter) ([]Leave, error)
	MarkApproved(ctx context.Context, id, approvedBy string, at time.Time) error
	MarkRejected(ctx context.Context, id, rejectedBy string, at time.Time, reason *string) error
	MarkCancelled(ctx context.Context, id string) error
}
