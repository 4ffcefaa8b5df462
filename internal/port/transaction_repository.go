package port

import (
	"context"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
)

// TransactionRepository defines the contract for submission transaction
// persistence. The validation core reads transactions through the ledger;
// writes happen only in the submission orchestrator.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.SubmissionTransaction) error
	GetByID(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error)
	// ListByVoyage returns every transaction for the voyage, ordered by
	// creation time ascending. The ledger derives all of its queries from
	// this single read so one validation pass sees one snapshot.
	ListByVoyage(ctx context.Context, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error)
	UpdateStatus(ctx context.Context, tx *domain.SubmissionTransaction) error
}
