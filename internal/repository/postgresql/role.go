package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) user.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// GetByIDAndTenant implements user.RoleRepository.
func (r *roleRepositoryImpl) GetByIDAndTenant(ctx context.Context, id, tenantID string) (user.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, name, description, is_system_role, created_at, updated_at
		FROM roles
		WHERE id = $1 AND tenant_id = $2
	`

	var role user.Role
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&role.ID, &role.TenantID, &role.Name, &role.Description,
		&role.IsSystemRole, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Role{}, user.ErrRoleNotFound
		}
		return user.Role{}, err
	}

	return role, nil
}

// ListByTenant implements user.RoleRepository.
func (r *roleRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]user.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, name, description, is_system_role, created_at, updated_at
		FROM roles
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]user.Role, 0)
	for rows.Next() {
		var role user.Role
		if err := rows.Scan(
			&role.ID, &role.TenantID, &role.Name, &role.Description,
			&role.IsSystemRole, &role.CreatedAt, &role.UpdatedAt,
		); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, nil
}
