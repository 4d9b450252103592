package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
)

// identity is the caller extracted from access-token claims. Services receive
// these values as plain arguments; they never read the token themselves.
type identity struct {
	UserID   string
	TenantID string
	RoleID   string
	Email    string
}

func identityFromContext(ctx context.Context) (identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return identity{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	tenantID, _ := claims["tenant_id"].(string)
	roleID, _ := claims["role_id"].(string)
	email, _ := claims["email"].(string)

	if userID == "" || tenantID == "" {
		return identity{}, auth.ErrInvalidToken
	}

	return identity{
		UserID:   userID,
		TenantID: tenantID,
		RoleID:   roleID,
		Email:    email,
	}, nil
}
