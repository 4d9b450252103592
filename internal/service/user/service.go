package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	txm database.TxManager
	user.UserRepository
	user.RoleRepository
	user.PermissionRepository
}

func NewUserService(
	txm database.TxManager,
	userRepository user.UserRepository,
	roleRepository user.RoleRepository,
	permissionRepository user.PermissionRepository,
) user.UserService {
	return &UserServiceImpl{
		txm:                  txm,
		UserRepository:       userRepository,
		RoleRepository:       roleRepository,
		PermissionRepository: permissionRepository,
	}
}

// CreateUser implements user.UserService. The tenant comes from the caller's
// token, never from the request body.
func (s *UserServiceImpl) CreateUser(ctx context.Context, tenantID string, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	var created user.User
	var roleName string
	err := s.txm.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.UserRepository.GetByEmailAndTenant(ctx, req.Email, tenantID)
		if err == nil {
			return user.ErrEmailExists
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		role, err := s.RoleRepository.GetByIDAndTenant(ctx, req.RoleID, tenantID)
		if err != nil {
			if errors.Is(err, user.ErrRoleNotFound) {
				return user.ErrInvalidRole
			}
			return fmt.Errorf("failed to get role: %w", err)
		}
		roleName = role.Name

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		created, err = s.UserRepository.Create(ctx, user.User{
			TenantID:     tenantID,
			RoleID:       req.RoleID,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	created.RoleName = &roleName
	return toUserResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, tenantID string) ([]user.UserResponse, error) {
	users, err := s.UserRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// ListRoles implements user.UserService.
func (s *UserServiceImpl) ListRoles(ctx context.Context, tenantID string) ([]user.RoleResponse, error) {
	roles, err := s.RoleRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]user.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, user.RoleResponse{
			ID:           r.ID,
			Name:         r.Name,
			Description:  r.Description,
			IsSystemRole: r.IsSystemRole,
		})
	}
	return responses, nil
}

// ListPermissions implements user.UserService.
func (s *UserServiceImpl) ListPermissions(ctx context.Context, tenantID string) ([]user.PermissionResponse, error) {
	permissions, err := s.PermissionRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	responses := make([]user.PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, toPermissionResponse(p))
	}
	return responses, nil
}

// CreatePermission implements user.UserService.
func (s *UserServiceImpl) CreatePermission(ctx context.Context, tenantID string, req user.CreatePermissionRequest) (user.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return user.PermissionResponse{}, err
	}

	created, err := s.PermissionRepository.Create(ctx, user.Permission{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Resource:    req.Resource,
		Action:      req.Action,
	})
	if err != nil {
		return user.PermissionResponse{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return toPermissionResponse(created), nil
}

// GetRolePermissions implements user.UserService. Returns every tenant
// permission annotated with whether the role holds it.
func (s *UserServiceImpl) GetRolePermissions(ctx context.Context, tenantID, roleID string) ([]user.RolePermissionResponse, error) {
	if _, err := s.RoleRepository.GetByIDAndTenant(ctx, roleID, tenantID); err != nil {
		return nil, err
	}

	permissions, err := s.PermissionRepository.ListByTenantWithRole(ctx, tenantID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}

	responses := make([]user.RolePermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, user.RolePermissionResponse{
			PermissionResponse: toPermissionResponse(p.Permission),
			RolePermissionID:   p.RolePermissionID,
		})
	}
	return responses, nil
}

// UpdateRolePermissions implements user.UserService. The role's assignments
// are replaced wholesale; delete and re-insert share a transaction so a
// concurrent read never sees a half-applied set.
func (s *UserServiceImpl) UpdateRolePermissions(ctx context.Context, tenantID, roleID string, permissionIDs []string) error {
	if _, err := s.RoleRepository.GetByIDAndTenant(ctx, roleID, tenantID); err != nil {
		return err
	}

	return s.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.PermissionRepository.DeleteRolePermissions(ctx, roleID); err != nil {
			return fmt.Errorf("failed to clear role permissions: %w", err)
		}
		for _, permissionID := range permissionIDs {
			if err := s.PermissionRepository.AddRolePermission(ctx, roleID, permissionID); err != nil {
				return fmt.Errorf("failed to assign permission: %w", err)
			}
		}
		return nil
	})
}

func toUserResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		RoleID:    u.RoleID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.RoleName != nil {
		resp.RoleName = *u.RoleName
	}
	return resp
}

func toPermissionResponse(p user.Permission) user.PermissionResponse {
	return user.PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Resource:    p.Resource,
		Action:      p.Action,
	}
}
