package port

import (
	"context"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
)

// CompanyRepository defines the contract for company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int, error)
	Update(ctx context.Context, company *domain.Company) error
}

// UserRepository defines the contract for user persistence. All query methods
// include companyID to enforce company isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}

// VoyageRepository defines the contract for voyage persistence. GetByID
// returns the voyage hydrated with its vessel, shipments, and any
// individually modeled containers.
type VoyageRepository interface {
	GetByID(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Voyage, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.Voyage, int, error)
}

// AttachmentRepository defines the contract for attachment metadata
// persistence.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	ListByVoyage(ctx context.Context, voyageID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, voyageID, attachmentID uuid.UUID) error
}

// CertificateRepository defines the contract for certificate metadata
// persistence.
type CertificateRepository interface {
	GetActive(ctx context.Context, companyID uuid.UUID, country domain.Country) (*domain.Certificate, error)
	Create(ctx context.Context, cert *domain.Certificate) error
}
