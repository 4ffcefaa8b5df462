package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/middleware"
	"aduanagw/internal/service"
)

// ValidationHandler exposes the dry-run validation endpoint.
type ValidationHandler struct {
	submissionService service.SubmissionService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(submissionService service.SubmissionService) *ValidationHandler {
	return &ValidationHandler{submissionService: submissionService}
}

// validateRequest is the request body for a validation run.
type validateRequest struct {
	Operation domain.Operation `json:"operation" binding:"required"`
	Country   domain.Country   `json:"country" binding:"required"`
}

// Validate handles POST /api/v1/voyages/:voyageID/validate
// It runs the full pipeline without opening a transaction, so operators can
// fix a manifest before committing to a submission attempt.
func (h *ValidationHandler) Validate(c *gin.Context) {
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

	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.submissionService.Validate(c.Request.Context(), companyID, service.SubmitInput{
		VoyageID:  voyageID,
		Operation: req.Operation,
		Country:   req.Country,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"result":         result,
		"grouped_errors": result.GroupedErrors(),
		"summary":        result.Summary(),
	})
}
