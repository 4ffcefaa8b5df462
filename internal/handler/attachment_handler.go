package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aduanagw/internal/middleware"
	"aduanagw/internal/service"
)

// AttachmentHandler handles voyage attachment endpoints.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/voyages/:voyageID/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	companyID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	voyageID, err := uuid.Parse(c.Param("voyageID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid voyage id")
		return
	}

	attachmentType := c.PostForm("attachment_type")
	if attachmentType == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "attachment_type field is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	attachment, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		CompanyID:      companyID,
		VoyageID:       voyageID,
		UploadedBy:     userID,
		AttachmentType: attachmentType,
		File:           file,
		Header:         header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attachment)
}

// List handles GET /api/v1/voyages/:voyageID/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
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

	attachments, err := h.attachmentService.ListByVoyage(c.Request.Context(), companyID, voyageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, attachments)
}

// DownloadURL handles GET /api/v1/voyages/:voyageID/attachments/:attachmentID/download
func (h *AttachmentHandler) DownloadURL(c *gin.Context) {
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
	attachmentID, err := uuid.Parse(c.Param("attachmentID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment id")
		return
	}

	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), companyID, voyageID, attachmentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/voyages/:voyageID/attachments/:attachmentID
func (h *AttachmentHandler) Delete(c *gin.Context) {
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
	attachmentID, err := uuid.Parse(c.Param("attachmentID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attachment id")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), companyID, voyageID, attachmentID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "attachment deleted"})
}
