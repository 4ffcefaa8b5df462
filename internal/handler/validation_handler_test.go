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
	"aduanagw/internal/service"
	"aduanagw/mocks"
)

func newValidationHandler() (*handler.ValidationHandler, *mocks.MockSubmissionService) {
	mockSvc := new(mocks.MockSubmissionService)
	return handler.NewValidationHandler(mockSvc), mockSvc
}

func TestValidationHandler_Validate_Valid(t *testing.T) {
	h, mockSvc := newValidationHandler()
	companyID, voyageID := uuid.New(), uuid.New()

	mockSvc.On("Validate", mock.Anything, companyID, mock.MatchedBy(func(input service.SubmitInput) bool {
		return input.VoyageID == voyageID &&
			input.Operation == domain.OperationAnticipada &&
			input.Country == domain.CountryArgentina
	})).Return(validResult(voyageID), nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/voyages/"+voyageID.String()+"/validate", gin.H{
		"operation": "anticipada",
		"country":   "AR",
	}, gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestValidationHandler_Validate_InvalidIsStill200(t *testing.T) {
	// A dry run reports findings; only a submission refusal is a 422.
	h, mockSvc := newValidationHandler()
	companyID, voyageID := uuid.New(), uuid.New()

	mockSvc.On("Validate", mock.Anything, companyID, mock.Anything).
		Return(invalidResult(voyageID, "La empresa no está activa en el sistema"), nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/voyages/"+voyageID.String()+"/validate", gin.H{
		"operation": "anticipada",
		"country":   "AR",
	}, gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "result")
	assert.Contains(t, data, "grouped_errors")
	assert.Contains(t, data, "summary")
}

func TestValidationHandler_Validate_VoyageNotFound(t *testing.T) {
	h, mockSvc := newValidationHandler()
	companyID, voyageID := uuid.New(), uuid.New()

	mockSvc.On("Validate", mock.Anything, companyID, mock.Anything).
		Return(nil, domain.ErrVoyageNotFound)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/voyages/"+voyageID.String()+"/validate", gin.H{
		"operation": "anticipada",
		"country":   "AR",
	}, gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, companyID, uuid.New(), "operator")

	h.Validate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "VOYAGE_NOT_FOUND", resp.Error.Code)
}

func TestValidationHandler_Validate_MissingBody(t *testing.T) {
	h, _ := newValidationHandler()
	voyageID := uuid.New()

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/voyages/"+voyageID.String()+"/validate", gin.H{},
		gin.Params{{Key: "voyageID", Value: voyageID.String()}})
	setAuthContext(c, uuid.New(), uuid.New(), "operator")

	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationHandler_Validate_BadVoyageID(t *testing.T) {
	h, _ := newValidationHandler()

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/voyages/not-a-uuid/validate", gin.H{
		"operation": "anticipada",
		"country":   "AR",
	}, gin.Params{{Key: "voyageID", Value: "not-a-uuid"}})
	setAuthContext(c, uuid.New(), uuid.New(), "operator")

	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
