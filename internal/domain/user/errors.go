package user

import "errors"

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailExists        = errors.New("User with this email already exists")
	ErrRoleNotFound       = errors.New("Role not found")
	ErrInvalidRole        = errors.New("Invalid role for this tenant")
	ErrPermissionNotFound = errors.New("Permission not found")
)
