package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

// MockCertificateManager is a mock implementation of port.CertificateManager.
type MockCertificateManager struct {
	mock.Mock
}

func (m *MockCertificateManager) ValidateCompanyCertificate(ctx context.Context, companyID uuid.UUID, country domain.Country) (*port.CertificateStatus, error) {
	args := m.Called(ctx, companyID, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.CertificateStatus), args.Error(1)
}
