package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/middleware"
	"aduanagw/internal/service"
)

// SubmissionHandler handles submission transaction endpoints.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit handles POST /api/v1/submissions
// A 422 response carries the validation result so the operator sees every
// finding from the refused pass.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	companyID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tx, result, err := h.submissionService.Submit(c.Request.Context(), companyID, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, APIResponse{
				Success: false,
				Error:   &APIError{Code: "VALIDATION_FAILED", Message: result.Summary()},
				Data: gin.H{
					"result":         result,
					"grouped_errors": result.GroupedErrors(),
				},
			})
			return
		}
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{
		"transaction": tx,
		"result":      result,
	})
}

// RecordOutcome handles POST /api/v1/submissions/:txID/outcome
func (h *SubmissionHandler) RecordOutcome(c *gin.Context) {
	companyID, err := middleware.GetCompanyID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing company context")
		return
	}

	txID, err := uuid.Parse(c.Param("txID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transaction id")
		return
	}

	var input service.OutcomeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tx, err := h.submissionService.RecordOutcome(c.Request.Context(), companyID, txID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tx)
}

// Retry handles POST /api/v1/submissions/:txID/retry
func (h *SubmissionHandler) Retry(c *gin.Context) {
	companyID, err := middleware.GetCompanyID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing company context")
		return
	}

	txID, err := uuid.Parse(c.Param("txID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transaction id")
		return
	}

	tx, result, err := h.submissionService.Retry(c.Request.Context(), companyID, txID)
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, APIResponse{
				Success: false,
				Error:   &APIError{Code: "VALIDATION_FAILED", Message: result.Summary()},
				Data: gin.H{
					"result":         result,
					"grouped_errors": result.GroupedErrors(),
				},
			})
			return
		}
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"transaction": tx,
		"result":      result,
	})
}

// Get handles GET /api/v1/submissions/:txID
func (h *SubmissionHandler) Get(c *gin.Context) {
	companyID, err := middleware.GetCompanyID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing company context")
		return
	}

	txID, err := uuid.Parse(c.Param("txID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid transaction id")
		return
	}

	tx, err := h.submissionService.GetTransaction(c.Request.Context(), companyID, txID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tx)
}

// ListByVoyage handles GET /api/v1/voyages/:voyageID/submissions
func (h *SubmissionHandler) ListByVoyage(c *gin.Context) {
	companyID, err := middleware.GetCompanyID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing company context")
		return
	}

	voyageID, err := uuid.Parse(c.Param("voyageID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid voyage id")
		return
	}

	txs, err := h.submissionService.ListByVoyage(c.Request.Context(), companyID, voyageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, txs)
}
