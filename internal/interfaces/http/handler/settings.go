package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/gympro/backend/internal/application/settings"
)

// SettingsHandler handles the gym profile and notification endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetProfile returns the gym profile, creating the default on first read
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	profile, err := h.settingsService.GetProfile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateProfile changes the gym's name and contact details
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	var req settingsapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateNotifications changes the reminder settings
func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	var req settingsapp.UpdateNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	profile, err := h.settingsService.UpdateNotifications(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}
