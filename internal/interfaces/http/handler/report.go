package handler

import (
	"github.com/gin-gonic/gin"
	reportapp "github.com/gympro/backend/internal/application/report"
)

// ReportHandler handles the analytics dashboard endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Dashboard returns the summary counters for the landing page
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// DailyTrend returns check-in traffic per day for the selected range
func (h *ReportHandler) DailyTrend(c *gin.Context) {
	var filter reportapp.TrendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	trend, err := h.reportService.DailyTrend(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trend)
}

// Heatmap returns check-in traffic per weekday and hour
func (h *ReportHandler) Heatmap(c *gin.Context) {
	cells, err := h.reportService.Heatmap(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cells)
}

// PlanDistribution returns client counts per plan
func (h *ReportHandler) PlanDistribution(c *gin.Context) {
	distribution, err := h.reportService.PlanDistribution(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, distribution)
}

// MonthlyRegistrations returns new client counts per month
func (h *ReportHandler) MonthlyRegistrations(c *gin.Context) {
	registrations, err := h.reportService.MonthlyRegistrations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, registrations)
}
