package port

import (
	"context"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
)

// CertificateStatus is the outcome of a company certificate check. Errors and
// warnings are merged verbatim into the validation result.
type CertificateStatus struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// CertificateManager checks whether a company holds a usable digital
// certificate for a customs authority. Implementations may block on I/O;
// the contract is synchronous with no cancellation beyond ctx.
type CertificateManager interface {
	ValidateCompanyCertificate(ctx context.Context, companyID uuid.UUID, country domain.Country) (*CertificateStatus, error)
}
