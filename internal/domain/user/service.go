package user

import "context"

type UserService interface {
	CreateUser(ctx context.Context, tenantID string, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context, tenantID string) ([]UserResponse, error)
	ListRoles(ctx context.Context, tenantID string) ([]RoleResponse, error)

	ListPermissions(ctx context.Context, tenantID string) ([]PermissionResponse, error)
	CreatePermission(ctx context.Context, tenantID string, req CreatePermissionRequest) (PermissionResponse, error)
	GetRolePermissions(ctx context.Context, tenantID, roleID string) ([]RolePermissionResponse, error)
	UpdateRolePermissions(ctx context.Context, tenantID, roleID string, permissionIDs []string) error
}
