package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aduanagw/internal/domain"
)

// MockTransactionRepo is a mock implementation of port.TransactionRepository.
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.SubmissionTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error) {
	args := m.Called(ctx, companyID, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmissionTransaction), args.Error(1)
}

func (m *MockTransactionRepo) ListByVoyage(ctx context.Context, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error) {
	args := m.Called(ctx, voyageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionTransaction), args.Error(1)
}

func (m *MockTransactionRepo) UpdateStatus(ctx context.Context, tx *domain.SubmissionTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
