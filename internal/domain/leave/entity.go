package leave

import "time"

// LeaveType entity - tenant-scoped catalog entry, referenced by leaves and balances
type LeaveType struct {
	ID               string
	TenantID         string
	Name             string
	Description      *string
	MaxDays          float64
	IsPaid           bool
	RequiresApproval bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LeaveBalance entity - the ledger, uniquely keyed by (user, leave type, year).
// allocated_days >= used_days + pending_days holds after every lifecycle mutation;
// applications that would break it are rejected instead.
type LeaveBalance struct {
	ID            string
	UserID        string
	TenantID      string
	LeaveTypeID   string
	Year          int
	AllocatedDays float64
	UsedDays      float64
	PendingDays   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	LeaveTypeName *string
	MaxDays       *float64
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

// LeaveStatusValues lists the accepted status filter values.
var LeaveStatusValues = []string{
	string(LeaveStatusPending),
	string(LeaveStatusApproved),
	string(LeaveStatusRejected),
	string(LeaveStatusCancelled),
}

// Leave entity - one application instance. total_days is the precomputed
// working-day count and never changes after creation.
type Leave struct {
	ID          string
	UserID      string
	TenantID    string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	TotalDays float64
	Reason    *string

	Status          LeaveStatus
	AppliedBy       string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectedBy      *string
	RejectedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	LeaveTypeName  *string
	FirstName      *string
	LastName       *string
	Email          *string
	AppliedByName  *string
	ApprovedByName *string
	RejectedByName *string
}
