package service

import (
	"context"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

// VoyageService defines the voyage read contract. Voyage data is mastered by
// the agency's upstream systems; the gateway only reads it.
type VoyageService interface {
	GetByID(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Voyage, error)
	List(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.Voyage, int, error)
}

type voyageService struct {
	voyageRepo port.VoyageRepository
}

// NewVoyageService creates a new VoyageService implementation.
func NewVoyageService(voyageRepo port.VoyageRepository) VoyageService {
	return &voyageService{voyageRepo: voyageRepo}
}

func (s *voyageService) GetByID(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Voyage, error) {
	return s.voyageRepo.GetByID(ctx, companyID, voyageID)
}

func (s *voyageService) List(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.Voyage, int, error) {
	return s.voyageRepo.ListByCompany(ctx, companyID, offset, limit)
}
