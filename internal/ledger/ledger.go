// Package ledger provides the read model over a voyage's submission history.
// A validation pass takes one Snapshot and derives every history-dependent
// check from it, so all checks within the pass see the same state. The
// snapshot is only a fast-reject view; the authoritative duplicate guard is
// the partial unique index on submission_transactions.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

// Ledger reads submission history for voyages.
type Ledger struct {
	txRepo port.TransactionRepository
}

// New creates a Ledger over the given transaction repository.
func New(txRepo port.TransactionRepository) *Ledger {
	return &Ledger{txRepo: txRepo}
}

// Snapshot loads the full transaction history of a voyage, ordered by
// creation time ascending.
func (l *Ledger) Snapshot(ctx context.Context, voyageID uuid.UUID) (*Snapshot, error) {
	txs, err := l.txRepo.ListByVoyage(ctx, voyageID)
	if err != nil {
		return nil, fmt.Errorf("ledger.Snapshot: %w", err)
	}
	return &Snapshot{transactions: txs}, nil
}

// Snapshot is a consistent point-in-time view of one voyage's history.
type Snapshot struct {
	transactions []domain.SubmissionTransaction
}

// NewSnapshot builds a snapshot from already-loaded transactions. Intended
// for tests and callers that batch their own reads.
func NewSnapshot(transactions []domain.SubmissionTransaction) *Snapshot {
	return &Snapshot{transactions: transactions}
}

// HasSuccessfulOperation reports whether a transaction for the operation has
// reached Success.
func (s *Snapshot) HasSuccessfulOperation(operation domain.Operation) bool {
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == operation && tx.Status == domain.StatusSuccess {
			return true
		}
	}
	return false
}

// ExternalReference returns the customs authority reference of a successful
// transaction for the operation, or nil if none exists.
func (s *Snapshot) ExternalReference(operation domain.Operation) *string {
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == operation && tx.Status == domain.StatusSuccess &&
			tx.ExternalReference != nil && *tx.ExternalReference != "" {
			return tx.ExternalReference
		}
	}
	return nil
}

// IsOperationInFlight reports whether any transaction for the operation is
// pending, sending, or awaiting retry.
func (s *Snapshot) IsOperationInFlight(operation domain.Operation) bool {
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == operation && tx.Status.IsInFlight() {
			return true
		}
	}
	return false
}

// CountRectifications counts rectification attempts for the operation.
func (s *Snapshot) CountRectifications(operation domain.Operation) int {
	count := 0
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == operation && tx.IsRectification {
			count++
		}
	}
	return count
}

// CountFailuresSince counts error-status transactions for the operation
// created at or after the given instant.
func (s *Snapshot) CountFailuresSince(operation domain.Operation, since time.Time) int {
	count := 0
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == operation && tx.Status == domain.StatusError && !tx.CreatedAt.Before(since) {
			count++
		}
	}
	return count
}

// PriorOperation summarizes one earlier transaction for flow checks.
type PriorOperation struct {
	Operation         domain.Operation
	Status            domain.TransactionStatus
	ExternalReference *string
}

// PriorOperations lists transactions for every operation except the excluded
// one, in creation order.
func (s *Snapshot) PriorOperations(excluding domain.Operation) []PriorOperation {
	var out []PriorOperation
	for i := range s.transactions {
		tx := &s.transactions[i]
		if tx.Operation == excluding {
			continue
		}
		out = append(out, PriorOperation{
			Operation:         tx.Operation,
			Status:            tx.Status,
			ExternalReference: tx.ExternalReference,
		})
	}
	return out
}
