package noop

import (
	"context"
	"log"

	"aduanagw/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outcomes to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendSubmissionOutcome(_ context.Context, toEmail, toName string, outcome port.SubmissionOutcome) error {
	log.Printf("[NOOP EMAIL] Submission outcome for %s (%s): voyage=%s operation=%s country=%s status=%s ref=%s error=%s",
		toName, toEmail, outcome.VoyageNumber, outcome.Operation, outcome.Country, outcome.Status,
		outcome.ExternalReference, outcome.ErrorCode)
	return nil
}
