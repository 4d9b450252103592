package user

import (
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleID    string `json:"roleId"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "roleId",
			Message: "roleId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	RoleID    string    `json:"roleId"`
	RoleName  string    `json:"roleName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type RoleResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	IsSystemRole bool    `json:"isSystemRole"`
}

type CreatePermissionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Resource) {
		errs = append(errs, validator.ValidationError{
			Field:   "resource",
			Message: "resource is required",
		})
	}

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PermissionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Resource    string  `json:"resource"`
	Action      string  `json:"action"`
}

// RolePermissionResponse marks whether the role holds each tenant permission.
type RolePermissionResponse struct {
	PermissionResponse
	RolePermissionID *string `json:"role_permission_id"`
}

type UpdateRolePermissionsRequest struct {
	PermissionIDs []string `json:"permissionIds"`
}

func (r *UpdateRolePermissionsRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, id := range r.PermissionIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissionIds[" + validator.Itoa(i) + "]",
				Message: "must be a valid permission id",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
