package validator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
)

// ValidationResult is the outcome of one full validation pass. It is created
// fresh per Validate call and owned by the caller; IsValid is computed exactly
// once, after every stage has run.
type ValidationResult struct {
	VoyageID        uuid.UUID        `json:"voyage_id"`
	Operation       domain.Operation `json:"operation"`
	Country         domain.Country   `json:"country"`
	Timestamp       time.Time        `json:"timestamp"`
	IsValid         bool             `json:"is_valid"`
	Errors          []string         `json:"errors"`
	Warnings        []string         `json:"warnings"`
	PerformedChecks []string         `json:"performed_checks"`
}

func newResult(voyageID uuid.UUID, operation domain.Operation, country domain.Country, now time.Time) *ValidationResult {
	return &ValidationResult{
		VoyageID:        voyageID,
		Operation:       operation,
		Country:         country,
		Timestamp:       now,
		Errors:          []string{},
		Warnings:        []string{},
		PerformedChecks: []string{},
	}
}

func (r *ValidationResult) addError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) recordCheck(name string) {
	r.PerformedChecks = append(r.PerformedChecks, name)
}

// finalize computes IsValid from the accumulated errors.
func (r *ValidationResult) finalize() {
	r.IsValid = len(r.Errors) == 0
}

// GroupedErrors buckets the error list by display category. Purely a view;
// it never affects IsValid.
func (r *ValidationResult) GroupedErrors() map[domain.ErrorCategory][]string {
	grouped := make(map[domain.ErrorCategory][]string)
	for _, msg := range r.Errors {
		cat := Categorize(msg)
		grouped[cat] = append(grouped[cat], msg)
	}
	return grouped
}

// Summary returns the human-readable one-line outcome.
func (r *ValidationResult) Summary() string {
	return fmt.Sprintf("%d error(es) y %d advertencia(s) encontrados", len(r.Errors), len(r.Warnings))
}
