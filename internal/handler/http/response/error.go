package response

import (
	"errors"
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehub/hrms-backend-go/internal/domain/timetracking"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrRoleNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrPermissionNotFound):
		NotFound(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrUnknownLeaveType),
		errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrAlreadyFinalized),
		errors.Is(err, leave.ErrAlreadyCancelled),
		errors.Is(err, leave.ErrCannotCancelApproved):
		BadRequest(w, err.Error(), nil)

	// Time tracking domain errors
	case errors.Is(err, timetracking.ErrAlreadyClockedIn),
		errors.Is(err, timetracking.ErrNoOpenSession),
		errors.Is(err, timetracking.ErrAlreadyOnBreak),
		errors.Is(err, timetracking.ErrNotOnBreak):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
