package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	txm database.TxManager
	user.UserRepository
	user.RoleRepository
	jwtService jwt.Service
}

func NewAuthService(
	txm database.TxManager,
	userRepository user.UserRepository,
	roleRepository user.RoleRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		txm:            txm,
		UserRepository: userRepository,
		RoleRepository: roleRepository,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserInfo, error) {
	if err := req.Validate(); err != nil {
		return auth.UserInfo{}, err
	}

	var created user.User
	var roleName string
	err := a.txm.RunInTx(ctx, func(ctx context.Context) error {
		_, err := a.UserRepository.GetByEmailAndTenant(ctx, req.Email, req.TenantID)
		if err == nil {
			return user.ErrEmailExists
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		role, err := a.RoleRepository.GetByIDAndTenant(ctx, req.RoleID, req.TenantID)
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

		created, err = a.UserRepository.Create(ctx, user.User{
			TenantID:     req.TenantID,
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
		return auth.UserInfo{}, err
	}

	return auth.UserInfo{
		ID:        created.ID,
		Email:     created.Email,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		RoleID:    created.RoleID,
		RoleName:  roleName,
		TenantID:  created.TenantID,
	}, nil
}

// Refresh implements auth.AuthService.
// The presented refresh token is revoked and replaced (rotation).
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if refreshToken == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(
		userData.ID, userData.TenantID, userData.RoleID, userData.Email,
	)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	info := auth.UserInfo{
		ID:        userData.ID,
		Email:     userData.Email,
		FirstName: userData.FirstName,
		LastName:  userData.LastName,
		RoleID:    userData.RoleID,
		TenantID:  userData.TenantID,
	}
	if userData.RoleName != nil {
		info.RoleName = *userData.RoleName
	}

	return auth.LoginResponse{
		Token:            accessToken,
		ExpiresAt:        expiresAt,
		User:             info,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
