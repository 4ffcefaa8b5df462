package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aduanagw/internal/domain"
	"aduanagw/internal/service"
	"aduanagw/mocks"
)

func strPtr(s string) *string                    { return &s }
func rolePtr(r domain.UserRole) *domain.UserRole { return &r }
func boolPtr(b bool) *bool                       { return &b }

func TestCreateUser(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	svc := service.NewUserService(repo)
	companyID := uuid.New()

	user, err := svc.Create(context.Background(), companyID, service.CreateUserInput{
		Email:    "nuevo@naviera.example",
		Password: "una-clave-segura",
		FullName: "Pedro Benitez",
		Role:     domain.RoleOperator,
	})

	require.NoError(t, err)
	assert.Equal(t, companyID, user.CompanyID)
	assert.Equal(t, domain.RoleOperator, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "una-clave-segura", user.PasswordHash, "passwords are never stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("una-clave-segura")))
}

func TestCreateUser_UnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "nuevo@naviera.example",
		Password: "una-clave-segura",
		FullName: "Pedro Benitez",
		Role:     "superadmin",
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	assert.Nil(t, user)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "repetido@naviera.example",
		Password: "una-clave-segura",
		FullName: "Pedro Benitez",
		Role:     domain.RoleOperator,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	companyID := uuid.New()
	existing := &domain.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Email:     "operador@naviera.example",
		FullName:  "Ana Diaz",
		Role:      domain.RoleOperator,
		IsActive:  true,
	}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, companyID, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	svc := service.NewUserService(repo)

	updated, err := svc.Update(context.Background(), companyID, existing.ID, service.UpdateUserInput{
		FullName: strPtr("Ana Diaz de Benitez"),
		Role:     rolePtr(domain.RoleAdmin),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Diaz de Benitez", updated.FullName)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.Equal(t, "operador@naviera.example", updated.Email, "untouched fields keep their values")
	assert.True(t, updated.IsActive)
}

func TestUpdateUser_Deactivate(t *testing.T) {
	companyID := uuid.New()
	existing := &domain.User{
		ID:        uuid.New(),
		CompanyID: companyID,
		Email:     "operador@naviera.example",
		IsActive:  true,
	}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, companyID, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)
	svc := service.NewUserService(repo)

	updated, err := svc.Update(context.Background(), companyID, existing.ID, service.UpdateUserInput{
		IsActive: boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateUser_UnknownRole(t *testing.T) {
	companyID := uuid.New()
	existing := &domain.User{ID: uuid.New(), CompanyID: companyID, Role: domain.RoleOperator}
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, companyID, existing.ID).Return(existing, nil)
	svc := service.NewUserService(repo)

	_, err := svc.Update(context.Background(), companyID, existing.ID, service.UpdateUserInput{
		Role: rolePtr("root"),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	svc := service.NewUserService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), service.UpdateUserInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
