package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

type certificateRepo struct {
	db *sqlx.DB
}

// NewCertificateRepo creates a new PostgreSQL-backed CertificateRepository.
func NewCertificateRepo(db *sqlx.DB) port.CertificateRepository {
	return &certificateRepo{db: db}
}

// GetActive returns the most recently registered certificate for the company
// and country. Expiry and revocation checks are the certificate manager's
// concern, not the repository's.
func (r *certificateRepo) GetActive(ctx context.Context, companyID uuid.UUID, country domain.Country) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := r.db.GetContext(ctx, &cert,
		`SELECT * FROM certificates WHERE company_id = $1 AND country = $2
		ORDER BY created_at DESC LIMIT 1`, companyID, country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("certificateRepo.GetActive: %w", err)
	}
	return &cert, nil
}

func (r *certificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	cert.ID = uuid.New()
	cert.CreatedAt = time.Now().UTC()

	query := `INSERT INTO certificates (id, company_id, country, subject, thumbprint, not_before, not_after, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		cert.ID, cert.CompanyID, cert.Country, cert.Subject, cert.Thumbprint,
		cert.NotBefore, cert.NotAfter, cert.Revoked, cert.CreatedAt)
	if err != nil {
		return fmt.Errorf("certificateRepo.Create: %w", err)
	}
	return nil
}
