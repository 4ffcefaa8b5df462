package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *domain.SubmissionTransaction) error {
	tx.ID = uuid.New()
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := `INSERT INTO submission_transactions
		(id, voyage_id, company_id, operation, country, status, external_reference, error_code, is_rectification, metadata, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.VoyageID, tx.CompanyID, tx.Operation, tx.Country, tx.Status,
		tx.ExternalReference, tx.ErrorCode, tx.IsRectification, tx.Metadata,
		tx.CreatedBy, tx.CreatedAt, tx.UpdatedAt)
	if err != nil {
		// The partial unique index on (voyage_id, operation) for in-flight
		// statuses closes the race between two concurrent submissions.
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "in_flight") {
			return domain.ErrSubmissionInFlight
		}
		return fmt.Errorf("transactionRepo.Create: %w", err)
	}
	return nil
}

func (r *transactionRepo) GetByID(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error) {
	var tx domain.SubmissionTransaction
	err := r.db.GetContext(ctx, &tx,
		"SELECT * FROM submission_transactions WHERE id = $1 AND company_id = $2", txID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("transactionRepo.GetByID: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepo) ListByVoyage(ctx context.Context, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error) {
	var txs []domain.SubmissionTransaction
	err := r.db.SelectContext(ctx, &txs,
		"SELECT * FROM submission_transactions WHERE voyage_id = $1 ORDER BY created_at ASC", voyageID)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.ListByVoyage: %w", err)
	}
	return txs, nil
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, tx *domain.SubmissionTransaction) error {
	tx.UpdatedAt = time.Now().UTC()
	query := `UPDATE submission_transactions
		SET status = $1, external_reference = $2, error_code = $3, metadata = $4, updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query,
		tx.Status, tx.ExternalReference, tx.ErrorCode, tx.Metadata, tx.UpdatedAt, tx.ID)
	if err != nil {
		return fmt.Errorf("transactionRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
