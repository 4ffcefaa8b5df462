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

func newUserHandler() (*handler.UserHandler, *mocks.MockUserService) {
	mockSvc := new(mocks.MockUserService)
	return handler.NewUserHandler(mockSvc), mockSvc
}

func TestUserHandler_Create_Success(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID := uuid.New()

	created := &domain.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Email:     "nuevo@navemar.com.ar",
		FullName:  "María González",
		Role:      domain.RoleOperator,
		IsActive:  true,
	}
	mockSvc.On("Create", mock.Anything, companyID, mock.MatchedBy(func(input service.CreateUserInput) bool {
		return input.Email == "nuevo@navemar.com.ar" &&
			input.FullName == "María González" &&
			input.Role == domain.RoleOperator
	})).Return(created, nil)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "nuevo@navemar.com.ar",
		"password":  "hunter2hunter2",
		"full_name": "María González",
		"role":      "operator",
	}, nil)
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "nuevo@navemar.com.ar", data["email"])
	// password hash never leaves the API
	assert.NotContains(t, data, "password_hash")
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID := uuid.New()

	mockSvc.On("Create", mock.Anything, companyID, mock.Anything).
		Return(nil, domain.ErrDuplicateEmail)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "existente@navemar.com.ar",
		"password":  "hunter2hunter2",
		"full_name": "María González",
		"role":      "operator",
	}, nil)
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "DUPLICATE_EMAIL", resp.Error.Code)
}

func TestUserHandler_Create_UnknownRole(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID := uuid.New()

	mockSvc.On("Create", mock.Anything, companyID, mock.Anything).
		Return(nil, domain.ErrInsufficientRole)

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "nuevo@navemar.com.ar",
		"password":  "hunter2hunter2",
		"full_name": "María González",
		"role":      "superadmin",
	}, nil)
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "INSUFFICIENT_ROLE", resp.Error.Code)
}

func TestUserHandler_Create_InvalidBody(t *testing.T) {
	h, mockSvc := newUserHandler()

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "not-an-email",
		"password":  "short",
		"full_name": "María González",
		"role":      "operator",
	}, nil)
	setAuthContext(c, uuid.New(), uuid.New(), "admin")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Create_NoAuth(t *testing.T) {
	h, mockSvc := newUserHandler()

	c, w := newJSONContext(t, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "nuevo@navemar.com.ar",
		"password":  "hunter2hunter2",
		"full_name": "María González",
		"role":      "operator",
	}, nil)

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_List(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID := uuid.New()

	users := []domain.User{
		{ID: uuid.New(), CompanyID: companyID, Email: "a@navemar.com.ar", Role: domain.RoleAdmin},
		{ID: uuid.New(), CompanyID: companyID, Email: "b@navemar.com.ar", Role: domain.RoleOperator},
	}
	mockSvc.On("List", mock.Anything, companyID, 0, 20).Return(users, 2, nil)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/users", nil, nil)
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID, userID := uuid.New(), uuid.New()

	mockSvc.On("GetByID", mock.Anything, companyID, userID).
		Return(nil, domain.ErrNotFound)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/users/"+userID.String(), nil,
		gin.Params{{Key: "userID", Value: userID.String()}})
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestUserHandler_Update_Patch(t *testing.T) {
	h, mockSvc := newUserHandler()
	companyID, userID := uuid.New(), uuid.New()

	updated := &domain.User{
		ID:        userID,
		CompanyID: companyID,
		Email:     "a@navemar.com.ar",
		FullName:  "María González de Pérez",
		Role:      domain.RoleOperator,
		IsActive:  true,
	}
	mockSvc.On("Update", mock.Anything, companyID, userID, mock.MatchedBy(func(input service.UpdateUserInput) bool {
		return input.FullName != nil && *input.FullName == "María González de Pérez" &&
			input.Email == nil && input.Role == nil && input.IsActive == nil
	})).Return(updated, nil)

	c, w := newJSONContext(t, http.MethodPatch, "/api/v1/users/"+userID.String(), gin.H{
		"full_name": "María González de Pérez",
	}, gin.Params{{Key: "userID", Value: userID.String()}})
	setAuthContext(c, companyID, uuid.New(), "admin")

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "María González de Pérez", data["full_name"])
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Update_BadID(t *testing.T) {
	h, mockSvc := newUserHandler()

	c, w := newJSONContext(t, http.MethodPatch, "/api/v1/users/abc", gin.H{
		"full_name": "María",
	}, gin.Params{{Key: "userID", Value: "abc"}})
	setAuthContext(c, uuid.New(), uuid.New(), "admin")

	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
