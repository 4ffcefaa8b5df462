package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aduanagw/internal/domain"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to domain.TransactionStatus }{
		{domain.StatusPending, domain.StatusSending},
		{domain.StatusSending, domain.StatusSuccess},
		{domain.StatusSending, domain.StatusError},
		{domain.StatusError, domain.StatusRetry},
		{domain.StatusRetry, domain.StatusSending},
	}
	for _, tc := range allowed {
		assert.True(t, domain.CanTransition(tc.from, tc.to), "%s -> %s must be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to domain.TransactionStatus }{
		{domain.StatusPending, domain.StatusSuccess},
		{domain.StatusPending, domain.StatusError},
		{domain.StatusPending, domain.StatusRetry},
		{domain.StatusSending, domain.StatusPending},
		{domain.StatusSending, domain.StatusRetry},
		{domain.StatusError, domain.StatusSending},
		{domain.StatusError, domain.StatusSuccess},
		{domain.StatusRetry, domain.StatusSuccess},
		{domain.StatusRetry, domain.StatusError},
		{domain.StatusSuccess, domain.StatusSending},
		{domain.StatusSuccess, domain.StatusRetry},
		{domain.StatusPending, domain.StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, domain.CanTransition(tc.from, tc.to), "%s -> %s must be denied", tc.from, tc.to)
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, domain.CanTransition("archived", domain.StatusSending))
	assert.False(t, domain.CanTransition(domain.StatusPending, "archived"))
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, domain.ValidateTransition(domain.StatusPending, domain.StatusSending))

	err := domain.ValidateTransition(domain.StatusSuccess, domain.StatusRetry)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorContains(t, err, "success -> retry")
}

func TestStatusClassification(t *testing.T) {
	inFlight := []domain.TransactionStatus{domain.StatusPending, domain.StatusSending, domain.StatusRetry}
	for _, s := range inFlight {
		assert.True(t, s.IsInFlight(), "%s must count as in flight", s)
		assert.False(t, s.IsTerminal())
	}

	terminal := []domain.TransactionStatus{domain.StatusSuccess, domain.StatusError}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s must be terminal", s)
		assert.False(t, s.IsInFlight())
	}
}

// Error stays out of the in-flight set even though a retry can follow; the
// retry itself re-enters the in-flight set as a new transition target.
func TestErrorIsRetryableButNotInFlight(t *testing.T) {
	assert.False(t, domain.StatusError.IsInFlight())
	assert.True(t, domain.CanTransition(domain.StatusError, domain.StatusRetry))
	assert.True(t, domain.StatusRetry.IsInFlight())
}
