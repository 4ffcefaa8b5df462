package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

type voyageRepo struct {
	db *sqlx.DB
}

// NewVoyageRepo creates a new PostgreSQL-backed VoyageRepository.
func NewVoyageRepo(db *sqlx.DB) port.VoyageRepository {
	return &voyageRepo{db: db}
}

// GetByID returns the voyage with its vessel, shipments, and container detail
// loaded. Shipments come back in BL-number order so validation messages are
// stable across runs.
func (r *voyageRepo) GetByID(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Voyage, error) {
	var voyage domain.Voyage
	err := r.db.GetContext(ctx, &voyage,
		"SELECT * FROM voyages WHERE id = $1 AND company_id = $2", voyageID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoyageNotFound
		}
		return nil, fmt.Errorf("voyageRepo.GetByID: %w", err)
	}

	if voyage.VesselID != nil {
		var vessel domain.Vessel
		err = r.db.GetContext(ctx, &vessel,
			"SELECT * FROM vessels WHERE id = $1", *voyage.VesselID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("voyageRepo.GetByID vessel: %w", err)
		}
		if err == nil {
			voyage.Vessel = &vessel
		}
	}

	err = r.db.SelectContext(ctx, &voyage.Shipments,
		"SELECT * FROM shipments WHERE voyage_id = $1 ORDER BY bl_number", voyageID)
	if err != nil {
		return nil, fmt.Errorf("voyageRepo.GetByID shipments: %w", err)
	}

	for i := range voyage.Shipments {
		err = r.db.SelectContext(ctx, &voyage.Shipments[i].Containers,
			"SELECT * FROM containers WHERE shipment_id = $1 ORDER BY number",
			voyage.Shipments[i].ID)
		if err != nil {
			return nil, fmt.Errorf("voyageRepo.GetByID containers: %w", err)
		}
	}
	return &voyage, nil
}

func (r *voyageRepo) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.Voyage, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM voyages WHERE company_id = $1", companyID)
	if err != nil {
		return nil, 0, fmt.Errorf("voyageRepo.ListByCompany count: %w", err)
	}

	var voyages []domain.Voyage
	err = r.db.SelectContext(ctx, &voyages,
		"SELECT * FROM voyages WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		companyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("voyageRepo.ListByCompany: %w", err)
	}
	return voyages, total, nil
}
