package user

import "context"

// UserRepository - interface for users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetActiveByEmail(ctx context.Context, email string) (User, error)
	GetByEmailAndTenant(ctx context.Context, email, tenantID string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]User, error)
}

// RoleRepository - interface for roles table
type RoleRepository interface {
	GetByIDAndTenant(ctx context.Context, id, tenantID string) (Role, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Role, error)
}

// PermissionRepository - interface for permissions and role_permissions tables
type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Permission, error)
	ListByTenantWithRole(ctx context.Context, tenantID, roleID string) ([]RolePermission, error)
	DeleteRolePermissions(ctx context.Context, roleID string) error
	AddRolePermission(ctx context.Context, roleID, permissionID string) error
}
