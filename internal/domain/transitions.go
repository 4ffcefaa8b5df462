package domain

import "fmt"

// AllowedTransitions defines the valid submission transaction transitions.
// The key is the current status; the value lists the statuses it may move to.
// Success is terminal; Error is terminal once the retry budget is spent, which
// is enforced by the validator's trailing-failure count, not here.
var AllowedTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending: {StatusSending},
	StatusSending: {StatusSuccess, StatusError},
	StatusError:   {StatusRetry},
	StatusRetry:   {StatusSending},
	StatusSuccess: {},
}

// CanTransition reports whether a transaction may move from one status to another.
func CanTransition(from, to TransactionStatus) bool {
	allowed, exists := AllowedTransitions[from]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition if the transition is not allowed.
func ValidateTransition(from, to TransactionStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// IsInFlight reports whether the status counts toward the
// at-most-one-in-flight rule for a (voyage, operation) pair.
func (s TransactionStatus) IsInFlight() bool {
	return s == StatusPending || s == StatusSending || s == StatusRetry
}

// IsTerminal reports whether no further transition is expected.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusError
}
