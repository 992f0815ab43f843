package checkin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/application/checkin/usecases"
	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/http/middleware"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// Handler serves the check-in endpoints.
type Handler struct {
	issueCredential   usecases.IssueCredentialExecutor
	validateAdmission usecases.ValidateAdmissionExecutor
	manualCheckIn     usecases.ManualCheckInExecutor
	listCheckIns      usecases.ListCheckInsExecutor
	logger            logger.Interface
}

// NewHandler creates the check-in handler.
func NewHandler(
	issueCredential usecases.IssueCredentialExecutor,
	validateAdmission usecases.ValidateAdmissionExecutor,
	manualCheckIn usecases.ManualCheckInExecutor,
	listCheckIns usecases.ListCheckInsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		issueCredential:   issueCredential,
		validateAdmission: validateAdmission,
		manualCheckIn:     manualCheckIn,
		listCheckIns:      listCheckIns,
		logger:            logger,
	}
}

// IssueCredential handles POST /checkin/credentials.
func (h *Handler) IssueCredential(c *gin.Context) {
	var req IssueCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, tenantID, role := middleware.CallerIdentity(c)
	result, err := h.issueCredential.Execute(c.Request.Context(), usecases.IssueCredentialCommand{
		UserID:   userID,
		TenantID: tenantID,
		Role:     role,
		MemberID: req.MemberID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Validate handles POST /checkin/validate. Public endpoint; every outcome
// is a tagged decision or a sanitized 500, never a raw error.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.validateAdmission.Execute(c.Request.Context(), usecases.ValidateAdmissionCommand{
		Credential:  req.Credential,
		TerminalSID: req.TerminalID,
		Method:      req.Method,
	})
	if err != nil {
		h.logger.Errorw("admission validation failed",
			"terminal_id", req.TerminalID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Manual handles POST /checkin/manual.
func (h *Handler) Manual(c *gin.Context) {
	var req ManualCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, tenantID, _ := middleware.CallerIdentity(c)
	result, err := h.manualCheckIn.Execute(c.Request.Context(), usecases.ManualCheckInCommand{
		TenantID: tenantID,
		MemberID: req.MemberID,
		Note:     req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// History handles GET /checkin/history.
func (h *Handler) History(c *gin.Context) {
	_, tenantID, _ := middleware.CallerIdentity(c)
	page, pageSize := utils.ParsePagination(c)

	memberID, _ := strconv.ParseUint(c.Query("member_id"), 10, 64)
	terminalID, _ := strconv.ParseUint(c.Query("terminal_id"), 10, 64)

	result, err := h.listCheckIns.Execute(c.Request.Context(), usecases.ListCheckInsCommand{
		TenantID:   tenantID,
		FromDate:   c.Query("from"),
		ToDate:     c.Query("to"),
		MemberID:   uint(memberID),
		TerminalID: uint(terminalID),
		Status:     c.Query("status"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
