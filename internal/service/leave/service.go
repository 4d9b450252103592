package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	txm database.TxManager
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRepository
	clk clock.Clock
}

func NewLeaveService(
	txm database.TxManager,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRepository leave.LeaveRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txm:                    txm,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRepository:        leaveRepository,
		clk:                    clk,
	}
}

// ListTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context, tenantID string) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	resp := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		resp = append(resp, leave.LeaveTypeResponse{
			ID:               lt.ID,
			Name:             lt.Name,
			Description:      lt.Description,
			MaxDays:          lt.MaxDays,
			IsPaid:           lt.IsPaid,
			RequiresApproval: lt.RequiresApproval,
		})
	}
	return resp, nil
}

// GetBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalances(ctx context.Context, userID, tenantID string, year int) ([]leave.BalanceResponse, error) {
	if year <= 0 {
		year = s.clk.Now().Year()
	}

	balances, err := s.LeaveBalanceRepository.ListByUserYear(ctx, userID, tenantID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	resp := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		item := leave.BalanceResponse{
			ID:            b.ID,
			LeaveTypeID:   b.LeaveTypeID,
			Year:          b.Year,
			AllocatedDays: b.AllocatedDays,
			UsedDays:      b.UsedDays,
			PendingDays:   b.PendingDays,
		}
		if b.LeaveTypeName != nil {
			item.LeaveTypeName = *b.LeaveTypeName
		}
		if b.MaxDays != nil {
			item.MaxDays = *b.MaxDays
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// Apply implements leave.LeaveService.
//
// The balance read, lazy creation, leave insert and pending-days reservation
// run inside one transaction; the reservation itself re-checks availability in
// SQL so a concurrent application cannot slip past a stale read.
func (s *LeaveServiceImpl) Apply(ctx context.Context, userID, tenantID string, req leave.ApplyLeaveRequest) (leave.ApplyLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return leave.ApplyLeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return leave.ApplyLeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if start.After(end) {
		return leave.ApplyLeaveResponse{}, leave.ErrInvalidRange
	}

	leaveType, err := s.LeaveTypeRepository.GetActiveByIDAndTenant(ctx, req.LeaveTypeID, tenantID)
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	totalDays := WorkingDays(start, end)
	year := start.Year()

	var resp leave.ApplyLeaveResponse
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		balance, err := s.LeaveBalanceRepository.GetByUserTypeYear(ctx, userID, req.LeaveTypeID, year)
		if err != nil {
			if !errors.Is(err, leave.ErrBalanceNotFound) {
				return fmt.Errorf("failed to get leave balance: %w", err)
			}
			// First application for this type and year seeds the ledger
			// from the type's annual cap.
			balance, err = s.LeaveBalanceRepository.Create(ctx, leave.LeaveBalance{
				UserID:        userID,
				TenantID:      tenantID,
				LeaveTypeID:   req.LeaveTypeID,
				Year:          year,
				AllocatedDays: leaveType.MaxDays,
			})
			if err != nil {
				return fmt.Errorf("failed to create leave balance: %w", err)
			}
		}

		available := balance.AllocatedDays - balance.UsedDays - balance.PendingDays
		if totalDays > available {
			return &leave.InsufficientBalanceError{Available: available}
		}

		created, err := s.LeaveRepository.Create(ctx, leave.Leave{
			UserID:      userID,
			TenantID:    tenantID,
			LeaveTypeID: req.LeaveTypeID,
			StartDate:   start,
			EndDate:     end,
			TotalDays:   totalDays,
			Reason:      req.Reason,
			AppliedBy:   userID,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}

		if err := s.LeaveBalanceRepository.AddPendingDays(ctx, balance.ID, totalDays); err != nil {
			if errors.Is(err, leave.ErrInsufficientBalance) {
				// A concurrent application consumed the remaining days
				// between our read and the guarded update.
				fresh, ferr := s.LeaveBalanceRepository.GetByUserTypeYear(ctx, userID, req.LeaveTypeID, year)
				if ferr == nil {
					return &leave.InsufficientBalanceError{
						Available: fresh.AllocatedDays - fresh.UsedDays - fresh.PendingDays,
					}
				}
			}
			return err
		}

		resp = leave.ApplyLeaveResponse{LeaveID: created.ID}
		return nil
	})
	if err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	return resp, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID, tenantID, reviewerID string) error {
	now := s.clk.Now()

	return s.txm.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByIDAndTenant(ctx, leaveID, tenantID)
		if err != nil {
			return err
		}

		if l.Status != leave.LeaveStatusPending {
			return &leave.AlreadyFinalizedError{Status: l.Status}
		}

		balance, err := s.LeaveBalanceRepository.GetByUserTypeYear(ctx, l.UserID, l.LeaveTypeID, l.StartDate.Year())
		if err != nil {
			return fmt.Errorf("failed to get leave balance: %w", err)
		}

		if err := s.LeaveRepository.MarkApproved(ctx, l.ID, reviewerID, now); err != nil {
			return fmt.Errorf("failed to approve leave: %w", err)
		}

		return s.LeaveBalanceRepository.MovePendingToUsed(ctx, balance.ID, l.TotalDays)
	})
}

// Reject implements leave.LeaveService.
// Rejection only releases the pending reservation; used_days stays untouched.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID, tenantID, reviewerID string, req leave.RejectLeaveRequest) error {
	now := s.clk.Now()

	return s.txm.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByIDAndTenant(ctx, leaveID, tenantID)
		if err != nil {
			return err
		}

		if l.Status != leave.LeaveStatusPending {
			return &leave.AlreadyFinalizedError{Status: l.Status}
		}

		balance, err := s.LeaveBalanceRepository.GetByUserTypeYear(ctx, l.UserID, l.LeaveTypeID, l.StartDate.Year())
		if err != nil {
			return fmt.Errorf("failed to get leave balance: %w", err)
		}

		if err := s.LeaveRepository.MarkRejected(ctx, l.ID, reviewerID, now, req.RejectionReason); err != nil {
			return fmt.Errorf("failed to reject leave: %w", err)
		}

		return s.LeaveBalanceRepository.ReleasePendingDays(ctx, balance.ID, l.TotalDays)
	})
}

// Cancel implements leave.LeaveService.
//
// Owner-only: the lookup is scoped to the calling user, so someone else's
// leave resolves as not found. A rejected leave may still be cancelled but the
// ledger is left alone - rejection already released the pending days.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, leaveID, tenantID, ownerID string) error {
	return s.txm.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByIDTenantUser(ctx, leaveID, tenantID, ownerID)
		if err != nil {
			return err
		}

		if l.Status == leave.LeaveStatusCancelled {
			return leave.ErrAlreadyCancelled
		}
		if l.Status == leave.LeaveStatusApproved {
			return leave.ErrCannotCancelApproved
		}

		if err := s.LeaveRepository.MarkCancelled(ctx, l.ID); err != nil {
			return fmt.Errorf("failed to cancel leave: %w", err)
		}

		if l.Status == leave.LeaveStatusPending {
			balance, err := s.LeaveBalanceRepository.GetByUserTypeYear(ctx, l.UserID, l.LeaveTypeID, l.StartDate.Year())
			if err != nil {
				return fmt.Errorf("failed to get leave balance: %w", err)
			}
			return s.LeaveBalanceRepository.ReleasePendingDays(ctx, balance.ID, l.TotalDays)
		}

		return nil
	})
}

// MyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, userID, tenantID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByUser(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return toLeaveResponses(leaves), nil
}

// AllLeaves implements leave.LeaveService. An empty status means no filter.
func (s *LeaveServiceImpl) AllLeaves(ctx context.Context, tenantID, status string) ([]leave.LeaveResponse, error) {
	if status != "" && !validator.IsInSlice(status, leave.LeaveStatusValues) {
		return nil, validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected, cancelled",
		}}
	}

	leaves, err := s.LeaveRepository.ListByTenant(ctx, tenantID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return toLeaveResponses(leaves), nil
}

// Report implements leave.LeaveService.
func (s *LeaveServiceImpl) Report(ctx context.Context, tenantID string, filter leave.ReportFilter) (leave.LeaveReportResponse, error) {
	leaves, err := s.LeaveRepository.ListForReport(ctx, tenantID, filter)
	if err != nil {
		return leave.LeaveReportResponse{}, fmt.Errorf("failed to list leaves for report: %w", err)
	}

	summary := leave.ReportSummary{Total: len(leaves)}
	for _, l := range leaves {
		switch l.Status {
		case leave.LeaveStatusPending:
			summary.Pending++
		case leave.LeaveStatusApproved:
			summary.Approved++
			summary.TotalDays += l.TotalDays
		case leave.LeaveStatusRejected:
			summary.Rejected++
		case leave.LeaveStatusCancelled:
			summary.Cancelled++
		}
	}

	return leave.LeaveReportResponse{
		Leaves:  toLeaveResponses(leaves),
		Summary: summary,
	}, nil
}

func toLeaveResponses(leaves []leave.Leave) []leave.LeaveResponse {
	resp := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		resp = append(resp, leave.LeaveResponse{
			ID:              l.ID,
			UserID:          l.UserID,
			LeaveTypeID:     l.LeaveTypeID,
			LeaveTypeName:   l.LeaveTypeName,
			StartDate:       l.StartDate.Format(dateLayout),
			EndDate:         l.EndDate.Format(dateLayout),
			TotalDays:       l.TotalDays,
			Reason:          l.Reason,
			Status:          l.Status,
			AppliedByName:   l.AppliedByName,
			ApprovedByName:  l.ApprovedByName,
			RejectedByName:  l.RejectedByName,
			ApprovedAt:      l.ApprovedAt,
			RejectedAt:      l.RejectedAt,
			RejectionReason: l.RejectionReason,
			FirstName:       l.FirstName,
			LastName:        l.LastName,
			Email:           l.Email,
			CreatedAt:       l.CreatedAt,
		})
	}
	return resp
}
