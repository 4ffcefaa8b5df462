// Package certificate checks company digital certificates against the
// validity metadata stored in the database. Key material never enters the
// gateway; only subject, thumbprint, and validity window are tracked.
package certificate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

// expiryWarningDays is how far ahead of expiry the manager starts warning.
const expiryWarningDays = 30

type manager struct {
	certs port.CertificateRepository
	nowFn func() time.Time
}

// NewManager creates a CertificateManager backed by the certificate
// repository.
func NewManager(certs port.CertificateRepository) port.CertificateManager {
	return &manager{certs: certs, nowFn: time.Now}
}

// NewManagerWithClock creates a manager with a fixed clock for tests.
func NewManagerWithClock(certs port.CertificateRepository, nowFn func() time.Time) port.CertificateManager {
	return &manager{certs: certs, nowFn: nowFn}
}

func (m *manager) ValidateCompanyCertificate(ctx context.Context, companyID uuid.UUID, country domain.Country) (*port.CertificateStatus, error) {
	status := &port.CertificateStatus{IsValid: true}

	cert, err := m.certs.GetActive(ctx, companyID, country)
	if err != nil {
		if errors.Is(err, domain.ErrCertificateNotFound) {
			status.IsValid = false
			status.Errors = append(status.Errors,
				fmt.Sprintf("La empresa no tiene un certificado digital registrado para %s", country.Authority()))
			return status, nil
		}
		return nil, fmt.Errorf("certificate.ValidateCompanyCertificate: %w", err)
	}

	now := m.nowFn().UTC()

	if cert.Revoked {
		status.IsValid = false
		status.Errors = append(status.Errors,
			fmt.Sprintf("El certificado digital para %s fue revocado", country.Authority()))
		return status, nil
	}

	if now.Before(cert.NotBefore) {
		status.IsValid = false
		status.Errors = append(status.Errors,
			fmt.Sprintf("El certificado digital para %s aún no entró en vigencia", country.Authority()))
		return status, nil
	}

	if !now.Before(cert.NotAfter) {
		status.IsValid = false
		status.Errors = append(status.Errors,
			fmt.Sprintf("El certificado digital para %s está vencido desde el %s",
				country.Authority(), cert.NotAfter.Format("02/01/2006")))
		return status, nil
	}

	if daysLeft := int(cert.NotAfter.Sub(now).Hours() / 24); daysLeft <= expiryWarningDays {
		status.Warnings = append(status.Warnings,
			fmt.Sprintf("El certificado digital para %s vence en %d días", country.Authority(), daysLeft))
	}
	return status, nil
}
