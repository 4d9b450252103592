package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrInvalidToken        = errors.New("Invalid or expired token")
	ErrTokenExpired        = errors.New("Token expired")
	ErrRefreshTokenRevoked = errors.New("Refresh token revoked")
)
