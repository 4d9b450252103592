package postgresql

import (
	"context"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type permissionRepositoryImpl struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) user.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

// Create implements user.PermissionRepository.
func (r *permissionRepositoryImpl) Create(ctx context.Context, p user.Permission) (user.Permission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO permissions (
			id, tenant_id, name, description, resource, action, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.TenantID, p.Name, p.Description, p.Resource, p.Action,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return user.Permission{}, err
	}

	return p, nil
}

// ListByTenant implements user.PermissionRepository.
func (r *permissionRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]user.Permission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, name, description, resource, action, created_at, updated_at
		FROM permissions
		WHERE tenant_id = $1
		ORDER BY resource, action
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]user.Permission, 0)
	for rows.Next() {
		var p user.Permission
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.Name, &p.Description,
			&p.Resource, &p.Action, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}

	return permissions, nil
}

// ListByTenantWithRole implements user.PermissionRepository.
// Left join marks which of the tenant's permissions the role holds.
func (r *permissionRepositoryImpl) ListByTenantWithRole(ctx context.Context, tenantID, roleID string) ([]user.RolePermission, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT p.id, p.tenant_id, p.name, p.description, p.resource, p.action,
			   p.created_at, p.updated_at,
			   rp.id AS role_permission_id
		FROM permissions p
		LEFT JOIN role_permissions rp ON p.id = rp.permission_id AND rp.role_id = $1
		WHERE p.tenant_id = $2
		ORDER BY p.resource, p.action
	`

	rows, err := q.Query(ctx, query, roleID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := make([]user.RolePermission, 0)
	for rows.Next() {
		var p user.RolePermission
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Resource, &p.Action,
			&p.CreatedAt, &p.UpdatedAt,
			&p.RolePermissionID,
		); err != nil {
			return nil, err
		}
		permissions = append(permissions, p)
	}

	return permissions, nil
}

// DeleteRolePermissions implements user.PermissionRepository.
func (r *permissionRepositoryImpl) DeleteRolePermissions(ctx context.Context, roleID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM role_permissions
		WHERE role_id = $1
	`
	_, err := q.Exec(ctx, query, roleID)
	return err
}

// AddRolePermission implements user.PermissionRepository.
func (r *permissionRepositoryImpl) AddRolePermission(ctx context.Context, roleID, permissionID string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO role_permissions (id, role_id, permission_id, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
	`
	_, err := q.Exec(ctx, query, roleID, permissionID)
	return err
}
