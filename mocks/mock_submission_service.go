package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aduanagw/internal/domain"
	"aduanagw/internal/service"
	"aduanagw/internal/validator"
)

// MockSubmissionService is a mock implementation of service.SubmissionService.
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Validate(ctx context.Context, companyID uuid.UUID, input service.SubmitInput) (*validator.ValidationResult, error) {
	args := m.Called(ctx, companyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validator.ValidationResult), args.Error(1)
}

func (m *MockSubmissionService) Submit(ctx context.Context, companyID, userID uuid.UUID, input service.SubmitInput) (*domain.SubmissionTransaction, *validator.ValidationResult, error) {
	args := m.Called(ctx, companyID, userID, input)
	var tx *domain.SubmissionTransaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*domain.SubmissionTransaction)
	}
	var result *validator.ValidationResult
	if args.Get(1) != nil {
		result = args.Get(1).(*validator.ValidationResult)
	}
	return tx, result, args.Error(2)
}

func (m *MockSubmissionService) RecordOutcome(ctx context.Context, companyID, txID uuid.UUID, input service.OutcomeInput) (*domain.SubmissionTransaction, error) {
	args := m.Called(ctx, companyID, txID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmissionTransaction), args.Error(1)
}

func (m *MockSubmissionService) Retry(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, *validator.ValidationResult, error) {
	args := m.Called(ctx, companyID, txID)
	var tx *domain.SubmissionTransaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*domain.SubmissionTransaction)
	}
	var result *validator.ValidationResult
	if args.Get(1) != nil {
		result = args.Get(1).(*validator.ValidationResult)
	}
	return tx, result, args.Error(2)
}

func (m *MockSubmissionService) GetTransaction(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error) {
	args := m.Called(ctx, companyID, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmissionTransaction), args.Error(1)
}

func (m *MockSubmissionService) ListByVoyage(ctx context.Context, companyID, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error) {
	args := m.Called(ctx, companyID, voyageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmissionTransaction), args.Error(1)
}
