package terminal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/terminal/usecases"
	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/middleware"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/id"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// Handler serves the terminal registry endpoints. All operations are
// tenant-scoped through the authenticated caller.
type Handler struct {
	createTerminal usecases.CreateTerminalExecutor
	listTerminals  usecases.ListTerminalsExecutor
	getTerminal    usecases.GetTerminalExecutor
	updateTerminal usecases.UpdateTerminalExecutor
	deleteTerminal usecases.DeleteTerminalExecutor
	logger         logger.Interface
}

// NewHandler creates the terminal handler.
func NewHandler(
	createTerminal usecases.CreateTerminalExecutor,
	listTerminals usecases.ListTerminalsExecutor,
	getTerminal usecases.GetTerminalExecutor,
	updateTerminal usecases.UpdateTerminalExecutor,
	deleteTerminal usecases.DeleteTerminalExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createTerminal: createTerminal,
		listTerminals:  listTerminals,
		getTerminal:    getTerminal,
		updateTerminal: updateTerminal,
		deleteTerminal: deleteTerminal,
		logger:         logger,
	}
}

// Create handles POST /terminals.
func (h *Handler) Create(c *gin.Context) {
	var req CreateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, tenantID, _ := middleware.CallerIdentity(c)
	result, err := h.createTerminal.Execute(c.Request.Context(), usecases.CreateTerminalCommand{
		TenantID:   tenantID,
		Name:       req.Name,
		LocationID: req.LocationID,
		Settings:   req.Settings,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List handles GET /terminals.
func (h *Handler) List(c *gin.Context) {
	_, tenantID, _ := middleware.CallerIdentity(c)
	page, pageSize := utils.ParsePagination(c)

	locationID, _ := strconv.ParseUint(c.Query("location_id"), 10, 64)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid active filter")
			return
		}
		active = &parsed
	}

	result, err := h.listTerminals.Execute(c.Request.Context(), usecases.ListTerminalsCommand{
		TenantID:   tenantID,
		LocationID: uint(locationID),
		Active:     active,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get handles GET /terminals/:id.
func (h *Handler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTerminal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, tenantID, _ := middleware.CallerIdentity(c)
	result, err := h.getTerminal.Execute(c.Request.Context(), usecases.GetTerminalCommand{
		TenantID: tenantID,
		SID:      sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /terminals/:id.
func (h *Handler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTerminal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, tenantID, _ := middleware.CallerIdentity(c)
	result, err := h.updateTerminal.Execute(c.Request.Context(), usecases.UpdateTerminalCommand{
		TenantID:   tenantID,
		SID:        sid,
		Name:       req.Name,
		LocationID: req.LocationID,
		Active:     req.Active,
		Settings:   req.Settings,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /terminals/:id.
func (h *Handler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTerminal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	_, tenantID, _ := middleware.CallerIdentity(c)
	if err := h.deleteTerminal.Execute(c.Request.Context(), usecases.DeleteTerminalCommand{
		TenantID: tenantID,
		SID:      sid,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
