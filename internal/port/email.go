package port

import (
	"context"

	"aduanagw/internal/domain"
)

// SubmissionOutcome carries the details of a terminal submission transaction
// for notification purposes.
type SubmissionOutcome struct {
	VoyageNumber      string
	Operation         domain.Operation
	Country           domain.Country
	Status            domain.TransactionStatus
	ExternalReference string
	ErrorCode         string
}

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendSubmissionOutcome(ctx context.Context, toEmail, toName string, outcome SubmissionOutcome) error
}
