package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	membershipapp "github.com/gympro/backend/internal/application/membership"
)

// ClientHandler handles the member directory API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *membershipapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *membershipapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// Register creates a new client with an initial membership window
func (h *ClientHandler) Register(c *gin.Context) {
	var req membershipapp.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID retrieves a client by ID
func (h *ClientHandler) GetByID(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// GetByCINIT retrieves a client by CI/NIT document number
func (h *ClientHandler) GetByCINIT(c *gin.Context) {
	cinit := c.Param("cinit")
	if cinit == "" {
		h.BadRequest(c, "CI/NIT is required")
		return
	}

	client, err := h.clientService.GetByCINIT(c.Request.Context(), cinit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// List returns a paginated slice of the member directory
func (h *ClientHandler) List(c *gin.Context) {
	var filter membershipapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	// Defaults mirrored here so the pagination meta is accurate
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// Update modifies a client's directory details
func (h *ClientHandler) Update(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req membershipapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Renew starts a fresh membership window on the selected plan
func (h *ClientHandler) Renew(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req membershipapp.RenewClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	client, err := h.clientService.Renew(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Freeze suspends a client's membership
func (h *ClientHandler) Freeze(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.Freeze(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Unfreeze lifts a client's suspension
func (h *ClientHandler) Unfreeze(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.Unfreeze(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete removes a client from the directory
func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), clientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Count returns client counts per membership status
func (h *ClientHandler) Count(c *gin.Context) {
	counts, err := h.clientService.CountByStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counts)
}
