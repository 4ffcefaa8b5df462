package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aduanagw/internal/domain"
)

// MockVoyageService is a mock implementation of service.VoyageService.
type MockVoyageService struct {
	mock.Mock
}

func (m *MockVoyageService) GetByID(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Voyage, error) {
	args := m.Called(ctx, companyID, voyageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voyage), args.Error(1)
}

func (m *MockVoyageService) List(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.Voyage, int, error) {
	args := m.Called(ctx, companyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Voyage), args.Int(1), args.Error(2)
}
