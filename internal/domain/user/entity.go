package user

import "time"

// Tenant is the isolation boundary; every entity belongs to exactly one tenant.
type Tenant struct {
	ID        string
	Name      string
	Domain    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role struct {
	ID           string
	TenantID     string
	Name         string
	Description  *string
	IsSystemRole bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID           string
	TenantID     string
	RoleID       string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	RoleName *string
}

type Permission struct {
	ID          string
	TenantID    string
	Name        string
	Description *string
	Resource    string
	Action      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RolePermission is a permission row annotated with its assignment to a role.
// RolePermissionID is nil when the role does not hold the permission.
type RolePermission struct {
	Permission
	RolePermissionID *string
}
