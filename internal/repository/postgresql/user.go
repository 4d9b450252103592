package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO users (
			id, tenant_id, role_id, email, password_hash,
			first_name, last_name, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, true, NOW(), NOW()
		) RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.TenantID, u.RoleID, u.Email, u.PasswordHash,
		u.FirstName, u.LastName,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// GetActiveByEmail implements user.UserRepository.
// Login lookup - spans tenants, matching the email's single active account.
func (r *userRepositoryImpl) GetActiveByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT u.id, u.tenant_id, u.role_id, u.email, u.password_hash,
			   u.first_name, u.last_name, u.is_active, u.created_at, u.updated_at,
			   r.name AS role_name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.email = $1 AND u.is_active = true
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.TenantID, &u.RoleID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&u.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByEmailAndTenant implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmailAndTenant(ctx context.Context, email, tenantID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, tenant_id, role_id, email, password_hash,
			   first_name, last_name, is_active, created_at, updated_at
		FROM users
		WHERE email = $1 AND tenant_id = $2
	`

	var u user.User
	err := q.QueryRow(ctx, query, email, tenantID).Scan(
		&u.ID, &u.TenantID, &u.RoleID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT u.id, u.tenant_id, u.role_id, u.email, u.password_hash,
			   u.first_name, u.last_name, u.is_active, u.created_at, u.updated_at,
			   r.name AS role_name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.TenantID, &u.RoleID, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&u.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// ListByTenant implements user.UserRepository.
func (r *userRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT u.id, u.tenant_id, u.role_id, u.email, u.password_hash,
			   u.first_name, u.last_name, u.is_active, u.created_at, u.updated_at,
			   r.name AS role_name
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.tenant_id = $1
		ORDER BY u.created_at DESC
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.TenantID, &u.RoleID, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
			&u.RoleName,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
