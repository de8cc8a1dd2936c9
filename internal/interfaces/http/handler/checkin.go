package handler

import (
	"github.com/gin-gonic/gin"
	membershipapp "github.com/gympro/backend/internal/application/membership"
)

// CheckInHandler handles front desk admission endpoints
type CheckInHandler struct {
	BaseHandler
	checkInService *membershipapp.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkInService *membershipapp.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

// Admit decides whether the person at the desk may enter. The outcome
// is always a 200 with a decision; an unknown CI/NIT is a decision,
// not an error, so the receptionist gets a readable answer either way.
func (h *CheckInHandler) Admit(c *gin.Context) {
	var req membershipapp.AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.checkInService.Admit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns the check-in log, newest first
func (h *CheckInHandler) List(c *gin.Context) {
	var filter membershipapp.CheckInListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	checkIns, total, err := h.checkInService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, checkIns, total, filter.Page, filter.PageSize)
}
