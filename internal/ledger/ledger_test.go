package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aduanagw/internal/domain"
	"aduanagw/internal/ledger"
	"aduanagw/mocks"
)

var base = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func tx(operation domain.Operation, status domain.TransactionStatus, age time.Duration) domain.SubmissionTransaction {
	return domain.SubmissionTransaction{
		ID:        uuid.New(),
		Operation: operation,
		Status:    status,
		CreatedAt: base.Add(-age),
	}
}

func TestSnapshot_LoadsHistory(t *testing.T) {
	voyageID := uuid.New()
	history := []domain.SubmissionTransaction{
		tx(domain.OperationManifiesto, domain.StatusSuccess, 48*time.Hour),
	}

	txRepo := new(mocks.MockTransactionRepo)
	txRepo.On("ListByVoyage", mock.Anything, voyageID).Return(history, nil)

	snapshot, err := ledger.New(txRepo).Snapshot(context.Background(), voyageID)
	require.NoError(t, err)
	assert.True(t, snapshot.HasSuccessfulOperation(domain.OperationManifiesto))
	txRepo.AssertExpectations(t)
}

func TestSnapshot_RepositoryError(t *testing.T) {
	txRepo := new(mocks.MockTransactionRepo)
	txRepo.On("ListByVoyage", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	snapshot, err := ledger.New(txRepo).Snapshot(context.Background(), uuid.New())
	assert.Nil(t, snapshot)
	assert.ErrorContains(t, err, "ledger.Snapshot")
}

func TestHasSuccessfulOperation(t *testing.T) {
	snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{
		tx(domain.OperationManifiesto, domain.StatusError, 3*time.Hour),
		tx(domain.OperationManifiesto, domain.StatusSuccess, 2*time.Hour),
		tx(domain.OperationAdjuntos, domain.StatusSending, time.Hour),
	})

	assert.True(t, snapshot.HasSuccessfulOperation(domain.OperationManifiesto))
	assert.False(t, snapshot.HasSuccessfulOperation(domain.OperationAdjuntos))
	assert.False(t, snapshot.HasSuccessfulOperation(domain.OperationCierre))
}

func TestExternalReference(t *testing.T) {
	t.Run("returns the reference of a successful transaction", func(t *testing.T) {
		success := tx(domain.OperationManifiesto, domain.StatusSuccess, time.Hour)
		success.ExternalReference = strPtr("DNA-REF-001")
		snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{success})

		ref := snapshot.ExternalReference(domain.OperationManifiesto)
		require.NotNil(t, ref)
		assert.Equal(t, "DNA-REF-001", *ref)
	})

	t.Run("ignores failed transactions with a reference", func(t *testing.T) {
		failed := tx(domain.OperationManifiesto, domain.StatusError, time.Hour)
		failed.ExternalReference = strPtr("DNA-REF-002")
		snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{failed})

		assert.Nil(t, snapshot.ExternalReference(domain.OperationManifiesto))
	})

	t.Run("ignores successes with an empty reference", func(t *testing.T) {
		success := tx(domain.OperationManifiesto, domain.StatusSuccess, time.Hour)
		success.ExternalReference = strPtr("")
		snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{success})

		assert.Nil(t, snapshot.ExternalReference(domain.OperationManifiesto))
	})
}

func TestIsOperationInFlight(t *testing.T) {
	cases := []struct {
		status   domain.TransactionStatus
		inFlight bool
	}{
		{domain.StatusPending, true},
		{domain.StatusSending, true},
		{domain.StatusRetry, true},
		{domain.StatusSuccess, false},
		{domain.StatusError, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{
				tx(domain.OperationAnticipada, tc.status, time.Hour),
			})
			assert.Equal(t, tc.inFlight, snapshot.IsOperationInFlight(domain.OperationAnticipada))
			assert.False(t, snapshot.IsOperationInFlight(domain.OperationMicDta),
				"other operations must not be affected")
		})
	}
}

func TestCountRectifications(t *testing.T) {
	first := tx(domain.OperationRectificacion, domain.StatusError, 72*time.Hour)
	first.IsRectification = true
	second := tx(domain.OperationRectificacion, domain.StatusSuccess, 48*time.Hour)
	second.IsRectification = true
	plain := tx(domain.OperationRectificacion, domain.StatusError, 24*time.Hour)

	snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{first, second, plain})
	assert.Equal(t, 2, snapshot.CountRectifications(domain.OperationRectificacion))
	assert.Equal(t, 0, snapshot.CountRectifications(domain.OperationManifiesto))
}

func TestCountFailuresSince(t *testing.T) {
	snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{
		tx(domain.OperationAnticipada, domain.StatusError, time.Hour),
		tx(domain.OperationAnticipada, domain.StatusError, 23*time.Hour),
		tx(domain.OperationAnticipada, domain.StatusError, 25*time.Hour),
		tx(domain.OperationAnticipada, domain.StatusSuccess, 2*time.Hour),
		tx(domain.OperationMicDta, domain.StatusError, time.Hour),
	})

	since := base.Add(-24 * time.Hour)
	assert.Equal(t, 2, snapshot.CountFailuresSince(domain.OperationAnticipada, since))
	assert.Equal(t, 1, snapshot.CountFailuresSince(domain.OperationMicDta, since))
}

func TestCountFailuresSince_BoundaryInclusive(t *testing.T) {
	snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{
		tx(domain.OperationAnticipada, domain.StatusError, 24*time.Hour),
	})
	assert.Equal(t, 1, snapshot.CountFailuresSince(domain.OperationAnticipada, base.Add(-24*time.Hour)))
}

func TestPriorOperations(t *testing.T) {
	manifest := tx(domain.OperationManifiesto, domain.StatusSuccess, 48*time.Hour)
	manifest.ExternalReference = strPtr("DNA-REF-003")
	adjuntos := tx(domain.OperationAdjuntos, domain.StatusError, 24*time.Hour)
	consulta := tx(domain.OperationConsulta, domain.StatusPending, time.Hour)

	snapshot := ledger.NewSnapshot([]domain.SubmissionTransaction{manifest, adjuntos, consulta})

	priors := snapshot.PriorOperations(domain.OperationConsulta)
	require.Len(t, priors, 2)
	assert.Equal(t, domain.OperationManifiesto, priors[0].Operation)
	assert.Equal(t, domain.StatusSuccess, priors[0].Status)
	require.NotNil(t, priors[0].ExternalReference)
	assert.Equal(t, "DNA-REF-003", *priors[0].ExternalReference)
	assert.Equal(t, domain.OperationAdjuntos, priors[1].Operation)
}

func TestSnapshot_Empty(t *testing.T) {
	snapshot := ledger.NewSnapshot(nil)
	assert.False(t, snapshot.HasSuccessfulOperation(domain.OperationManifiesto))
	assert.Nil(t, snapshot.ExternalReference(domain.OperationManifiesto))
	assert.False(t, snapshot.IsOperationInFlight(domain.OperationManifiesto))
	assert.Equal(t, 0, snapshot.CountRectifications(domain.OperationRectificacion))
	assert.Empty(t, snapshot.PriorOperations(domain.OperationManifiesto))
}
