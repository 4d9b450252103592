package leave

import (
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveTypeID string  `json:"leaveTypeId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveTypeId",
			Message: "leaveTypeId is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

type ApplyLeaveResponse struct {
	LeaveID string `json:"leaveId"`
}

type LeaveTypeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	MaxDays          float64 `json:"max_days"`
	IsPaid           bool    `json:"is_paid"`
	RequiresApproval bool    `json:"requires_approval"`
}

type BalanceResponse struct {
	ID            string  `json:"id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Year          int     `json:"year"`
	AllocatedDays float64 `json:"allocated_days"`
	UsedDays      float64 `json:"used_days"`
	PendingDays   float64 `json:"pending_days"`
	MaxDays       float64 `json:"max_days"`
}

type LeaveResponse struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	LeaveTypeID     string      `json:"leave_type_id"`
	LeaveTypeName   *string     `json:"leave_type_name"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	TotalDays       float64     `json:"total_days"`
	Reason          *string     `json:"reason"`
	Status          LeaveStatus `json:"status"`
	AppliedByName   *string     `json:"applied_by_name"`
	ApprovedByName  *string     `json:"approved_by_name,omitempty"`
	RejectedByName  *string     `json:"rejected_by_name,omitempty"`
	ApprovedAt      *time.Time  `json:"approved_at,omitempty"`
	RejectedAt      *time.Time  `json:"rejected_at,omitempty"`
	RejectionReason *string     `json:"rejection_reason,omitempty"`
	FirstName       *string     `json:"first_name,omitempty"`
	LastName        *string     `json:"last_name,omitempty"`
	Email           *string     `json:"email,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type ReportFilter struct {
	UserID    string
	StartDate string
	EndDate   string
}

type ReportSummary struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Approved  int     `json:"approved"`
	Rejected  int     `json:"rejected"`
	Cancelled int     `json:"cancelled"`
	TotalDays float64 `json:"totalDays"`
}

type LeaveReportResponse struct {
	Leaves  []LeaveResponse `json:"leaves"`
	Summary ReportSummary   `json:"summary"`
}
