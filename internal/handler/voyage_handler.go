package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aduanagw/internal/middleware"
	"aduanagw/internal/service"
)

// VoyageHandler handles voyage read endpoints.
type VoyageHandler struct {
	voyageService service.VoyageService
}

// NewVoyageHandler creates a new VoyageHandler.
func NewVoyageHandler(voyageService service.VoyageService) *VoyageHandler {
	return &VoyageHandler{voyageService: voyageService}
}

// List handles GET /api/v1/voyages
func (h *VoyageHandler) List(c *gin.Context) {
	companyID, err := middleware.GetCompanyID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing company context")
		return
	}

	offset, limit := parsePagination(c)
	voyages, total, err := h.voyageService.List(c.Request.Context(), companyID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, voyages, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/voyages/:voyageID
func (h *VoyageHandler) Get(c *gin.Context) {
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

	voyage, err := h.voyageService.GetByID(c.Request.Context(), companyID, voyageID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, voyage)
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
