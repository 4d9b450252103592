package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetRolePermissions(w http.ResponseWriter, r *http.Request)
	UpdateRolePermissions(w http.ResponseWriter, r *http.Request)
}

type PermissionHandlerImpl struct {
	userService user.UserService
}

func NewPermissionHandler(userService user.UserService) PermissionHandler {
	return &PermissionHandlerImpl{userService: userService}
}

// List implements PermissionHandler.
func (h *PermissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	permissions, err := h.userService.ListPermissions(r.Context(), ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, permissions)
}

// Create implements PermissionHandler.
func (h *PermissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePermission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreatePermission(r.Context(), ident.TenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission created successfully", created)
}

// GetRolePermissions implements PermissionHandler.
func (h *PermissionHandlerImpl) GetRolePermissions(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	roleID := chi.URLParam(r, "roleId")
	if roleID == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	permissions, err := h.userService.GetRolePermissions(r.Context(), ident.TenantID, roleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, permissions)
}

// UpdateRolePermissions implements PermissionHandler.
func (h *PermissionHandlerImpl) UpdateRolePermissions(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	roleID := chi.URLParam(r, "roleId")
	if roleID == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	var req user.UpdateRolePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRolePermissions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.UpdateRolePermissions(r.Context(), ident.TenantID, roleID, req.PermissionIDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role permissions updated successfully", nil)
}
