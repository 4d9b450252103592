package http

import (
	"net/http"

	"github.com/peoplehub/hrms-backend-go/internal/domain/timetracking"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/response"
)

type TimeTrackingHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	BreakIn(w http.ResponseWriter, r *http.Request)
	BreakOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type TimeTrackingHandlerImpl struct {
	timeTrackingService timetracking.TimeTrackingService
}

func NewTimeTrackingHandler(timeTrackingService timetracking.TimeTrackingService) TimeTrackingHandler {
	return &TimeTrackingHandlerImpl{timeTrackingService: timeTrackingService}
}

// ClockIn implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeTrackingService.ClockIn(r.Context(), ident.UserID, ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in successfully", result)
}

// ClockOut implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeTrackingService.ClockOut(r.Context(), ident.UserID, ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// BreakIn implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) BreakIn(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeTrackingService.BreakIn(r.Context(), ident.UserID, ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started successfully", result)
}

// BreakOut implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) BreakOut(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeTrackingService.BreakOut(r.Context(), ident.UserID, ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended successfully", result)
}

// TodayStatus implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.timeTrackingService.TodayStatus(r.Context(), ident.UserID, ident.TenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Attendance implements TimeTrackingHandler.
func (h *TimeTrackingHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	days, err := h.timeTrackingService.Attendance(r.Context(), ident.UserID, ident.TenantID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
