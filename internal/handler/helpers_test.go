package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"aduanagw/internal/domain"
	"aduanagw/internal/handler"
	"aduanagw/internal/middleware"
	"aduanagw/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, companyID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyCompanyID, companyID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	c.Set(middleware.ContextKeyEmail, "operador@naviera.example")
}

// newJSONContext builds a test context with a JSON body and optional route
// params.
func newJSONContext(t *testing.T, method, path string, body interface{}, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func validResult(voyageID uuid.UUID) *validator.ValidationResult {
	return &validator.ValidationResult{
		VoyageID:        voyageID,
		Operation:       domain.OperationAnticipada,
		Country:         domain.CountryArgentina,
		Timestamp:       time.Now().UTC(),
		IsValid:         true,
		Errors:          []string{},
		Warnings:        []string{},
		PerformedChecks: []string{"system_preconditions"},
	}
}

func invalidResult(voyageID uuid.UUID, messages ...string) *validator.ValidationResult {
	return &validator.ValidationResult{
		VoyageID:        voyageID,
		Operation:       domain.OperationAnticipada,
		Country:         domain.CountryArgentina,
		Timestamp:       time.Now().UTC(),
		IsValid:         false,
		Errors:          messages,
		Warnings:        []string{},
		PerformedChecks: []string{"system_preconditions"},
	}
}
