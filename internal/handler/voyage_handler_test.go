package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aduanagw/internal/domain"
	"aduanagw/internal/handler"
	"aduanagw/mocks"
)

func newVoyageHandler() (*handler.VoyageHandler, *mocks.MockVoyageService) {
	mockSvc := new(mocks.MockVoyageService)
	return handler.NewVoyageHandler(mockSvc), mockSvc
}

func TestVoyageHandler_List_Defaults(t *testing.T) {
	h, mockSvc := newVoyageHandler()
	companyID := uuid.New()

	voyages := []domain.Voyage{
		{ID: uuid.New(), CompanyID: companyID, VoyageNumber: "V2025-0147"},
		{ID: uuid.New(), CompanyID: companyID, VoyageNumber: "V2025-0148"},
	}
	mockSvc.On("List", mock.Anything, companyID, 0, 20).Return(voyages, 2, nil)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages", nil, nil)
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Equal(t, 0, resp.Meta.Offset)
	assert.Equal(t, 20, resp.Meta.Limit)
	mockSvc.AssertExpectations(t)
}

func TestVoyageHandler_List_Pagination(t *testing.T) {
	h, mockSvc := newVoyageHandler()
	companyID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
	}{
		{"explicit values", "?offset=40&limit=10", 40, 10},
		{"limit capped at 100", "?limit=500", 0, 20},
		{"negative offset clamped", "?offset=-5", 0, 20},
		{"zero limit falls back", "?limit=0", 0, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc.On("List", mock.Anything, companyID, tc.wantOffset, tc.wantLimit).
				Return([]domain.Voyage{}, 0, nil).Once()

			c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages"+tc.query, nil, nil)
			setAuthContext(c, companyID, uuid.New(), "operator")

			h.List(c)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
	mockSvc.AssertExpectations(t)
}

func TestVoyageHandler_List_NoAuth(t *testing.T) {
	h, mockSvc := newVoyageHandler()

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages", nil, nil)

	h.List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVoyageHandler_Get_Success(t *testing.T) {
	h, mockSvc := newVoyageHandler()
	companyID, voyageID := uuid.New(), uuid.New()

	voyage := &domain.Voyage{
		ID:                  voyageID,
		CompanyID:           companyID,
		VoyageNumber:        "V2025-0147",
		OriginPortCode:      "ARBUE",
		DestinationPortCode: "PYASU",
	}
	mockSvc.On("GetByID", mock.Anything, companyID, voyageID).Return(voyage, nil)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages/"+voyageID.String(), nil,
		gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "V2025-0147", data["voyage_number"])
	mockSvc.AssertExpectations(t)
}

func TestVoyageHandler_Get_NotFound(t *testing.T) {
	h, mockSvc := newVoyageHandler()
	companyID, voyageID := uuid.New(), uuid.New()

	mockSvc.On("GetByID", mock.Anything, companyID, voyageID).
		Return(nil, domain.ErrVoyageNotFound)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages/"+voyageID.String(), nil,
		gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "VOYAGE_NOT_FOUND", resp.Error.Code)
}

func TestVoyageHandler_Get_BadID(t *testing.T) {
	h, _ := newVoyageHandler()

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/voyages/xyz", nil,
		gin.Params{{Key: "voyageID", Value: "xyz"}})
	setAuthContext(c, uuid.New(), uuid.New(), "operator")

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}
