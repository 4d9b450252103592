package leave

import "context"

type LeaveService interface {
	ListTypes(ctx context.Context, tenantID string) ([]LeaveTypeResponse, error)
	GetBalances(ctx context.Context, userID, tenantID string, year int) ([]BalanceResponse, error)

	Apply(ctx context.Context, userID, tenantID string, req ApplyLeaveRequest) (ApplyLeaveResponse, error)
	Approve(ctx context.Context, leaveID, tenantID, reviewerID string) error
	Reject(ctx context.Context, leaveID, tenantID, reviewerID string, req RejectLeaveRequest) error
	Cancel(ctx context.Context, leaveID, tenantID, ownerID string) error

	MyLeaves(ctx context.Context, userID, tenantID string) ([]LeaveResponse, error)
	AllLeaves(ctx context.Context, tenantID, status string) ([]LeaveResponse, error)
	Report(ctx context.Context, tenantID string, filter ReportFilter) (LeaveReportResponse, error)
}
