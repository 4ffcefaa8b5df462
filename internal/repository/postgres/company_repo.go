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

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	company.ID = uuid.New()
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	query := `INSERT INTO companies (id, name, tax_id, is_active, webservice_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		company.ID, company.Name, company.TaxID, company.IsActive,
		company.WebserviceEnabled, company.CreatedAt, company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("companyRepo.Create: %w", err)
	}

	for _, role := range company.Roles {
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO company_roles (company_id, role) VALUES ($1, $2)", company.ID, role)
		if err != nil {
			return fmt.Errorf("companyRepo.Create roles: %w", err)
		}
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company, "SELECT * FROM companies WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByID: %w", err)
	}
	if err := r.loadRoles(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) GetByTaxID(ctx context.Context, taxID string) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company, "SELECT * FROM companies WHERE tax_id = $1", taxID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByTaxID: %w", err)
	}
	if err := r.loadRoles(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) List(ctx context.Context, offset, limit int) ([]domain.Company, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM companies")
	if err != nil {
		return nil, 0, fmt.Errorf("companyRepo.List count: %w", err)
	}

	var companies []domain.Company
	err = r.db.SelectContext(ctx, &companies,
		"SELECT * FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("companyRepo.List: %w", err)
	}
	for i := range companies {
		if err := r.loadRoles(ctx, &companies[i]); err != nil {
			return nil, 0, err
		}
	}
	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	company.UpdatedAt = time.Now().UTC()
	query := `UPDATE companies SET name = $1, tax_id = $2, is_active = $3, webservice_enabled = $4, updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		company.Name, company.TaxID, company.IsActive, company.WebserviceEnabled,
		company.UpdatedAt, company.ID)
	if err != nil {
		return fmt.Errorf("companyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	_, err = r.db.ExecContext(ctx, "DELETE FROM company_roles WHERE company_id = $1", company.ID)
	if err != nil {
		return fmt.Errorf("companyRepo.Update roles: %w", err)
	}
	for _, role := range company.Roles {
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO company_roles (company_id, role) VALUES ($1, $2)", company.ID, role)
		if err != nil {
			return fmt.Errorf("companyRepo.Update roles: %w", err)
		}
	}
	return nil
}

func (r *companyRepo) loadRoles(ctx context.Context, company *domain.Company) error {
	err := r.db.SelectContext(ctx, &company.Roles,
		"SELECT role FROM company_roles WHERE company_id = $1 ORDER BY role", company.ID)
	if err != nil {
		return fmt.Errorf("companyRepo.loadRoles: %w", err)
	}
	return nil
}
