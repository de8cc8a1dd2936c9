package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	membershipapp "github.com/gympro/backend/internal/application/membership"
)

// PlanHandler handles the membership plan API endpoints
type PlanHandler struct {
	BaseHandler
	planService *membershipapp.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *membershipapp.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// Create adds a new membership plan
func (h *PlanHandler) Create(c *gin.Context) {
	var req membershipapp.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, plan)
}

// GetByID retrieves a plan by ID
func (h *PlanHandler) GetByID(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), planID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// List returns the plan catalog
func (h *PlanHandler) List(c *gin.Context) {
	var filter membershipapp.PlanListFilter
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

	plans, total, err := h.planService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, plans, total, filter.Page, filter.PageSize)
}

// Update modifies a plan's price, duration or description
func (h *PlanHandler) Update(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	var req membershipapp.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), planID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// Deactivate retires a plan from the sellable catalog
func (h *PlanHandler) Deactivate(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.planService.Deactivate(c.Request.Context(), planID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// Activate puts a retired plan back on sale
func (h *PlanHandler) Activate(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	plan, err := h.planService.Activate(c.Request.Context(), planID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// Delete removes a plan with no enrolled clients
func (h *PlanHandler) Delete(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID format")
		return
	}

	if err := h.planService.Delete(c.Request.Context(), planID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
