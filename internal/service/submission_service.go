package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
	"aduanagw/internal/validator"
)

// SubmitInput is the DTO for submission requests.
type SubmitInput struct {
	VoyageID  uuid.UUID        `json:"voyage_id" binding:"required"`
	Operation domain.Operation `json:"operation" binding:"required"`
	Country   domain.Country   `json:"country" binding:"required"`
}

// OutcomeInput is the DTO for recording the result reported by a customs
// webservice for an in-flight transaction.
type OutcomeInput struct {
	Success           bool   `json:"success"`
	ExternalReference string `json:"external_reference"`
	ErrorCode         string `json:"error_code"`
}

// SubmissionService orchestrates validation, transaction creation, and the
// transaction lifecycle for customs submissions.
type SubmissionService interface {
	// Validate runs the validation pipeline without creating a transaction.
	Validate(ctx context.Context, companyID uuid.UUID, input SubmitInput) (*validator.ValidationResult, error)
	// Submit validates the voyage and, when valid, opens a transaction and
	// moves it to sending. An invalid voyage returns the result alongside
	// ErrValidationFailed; no transaction is recorded.
	Submit(ctx context.Context, companyID, userID uuid.UUID, input SubmitInput) (*domain.SubmissionTransaction, *validator.ValidationResult, error)
	// RecordOutcome closes an in-flight transaction with the webservice's
	// reported result and notifies the submitting user.
	RecordOutcome(ctx context.Context, companyID, txID uuid.UUID, input OutcomeInput) (*domain.SubmissionTransaction, error)
	// Retry re-validates the voyage and puts a failed transaction back in
	// flight.
	Retry(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, *validator.ValidationResult, error)
	GetTransaction(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error)
	ListByVoyage(ctx context.Context, companyID, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error)
}

type submissionService struct {
	companyRepo    port.CompanyRepository
	userRepo       port.UserRepository
	voyageRepo     port.VoyageRepository
	attachmentRepo port.AttachmentRepository
	txRepo         port.TransactionRepository
	voyageVal      *validator.VoyageValidator
	email          port.EmailSender
}

// NewSubmissionService creates a new SubmissionService implementation.
func NewSubmissionService(
	companyRepo port.CompanyRepository,
	userRepo port.UserRepository,
	voyageRepo port.VoyageRepository,
	attachmentRepo port.AttachmentRepository,
	txRepo port.TransactionRepository,
	voyageVal *validator.VoyageValidator,
	email port.EmailSender,
) SubmissionService {
	return &submissionService{
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		voyageRepo:     voyageRepo,
		attachmentRepo: attachmentRepo,
		txRepo:         txRepo,
		voyageVal:      voyageVal,
		email:          email,
	}
}

func (s *submissionService) Validate(ctx context.Context, companyID uuid.UUID, input SubmitInput) (*validator.ValidationResult, error) {
	company, voyage, opts, err := s.loadValidationContext(ctx, companyID, input.VoyageID)
	if err != nil {
		return nil, err
	}
	return s.voyageVal.Validate(ctx, company, voyage, input.Operation, input.Country, opts), nil
}

func (s *submissionService) Submit(ctx context.Context, companyID, userID uuid.UUID, input SubmitInput) (*domain.SubmissionTransaction, *validator.ValidationResult, error) {
	company, voyage, opts, err := s.loadValidationContext(ctx, companyID, input.VoyageID)
	if err != nil {
		return nil, nil, err
	}

	result := s.voyageVal.Validate(ctx, company, voyage, input.Operation, input.Country, opts)
	if !result.IsValid {
		return nil, result, domain.ErrValidationFailed
	}

	tx := &domain.SubmissionTransaction{
		VoyageID:        voyage.ID,
		CompanyID:       companyID,
		Operation:       input.Operation,
		Country:         input.Country,
		Status:          domain.StatusPending,
		IsRectification: input.Operation == domain.OperationRectificacion,
		CreatedBy:       userID,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, result, err
	}

	if err := s.transition(ctx, tx, domain.StatusSending); err != nil {
		return nil, result, err
	}
	return tx, result, nil
}

func (s *submissionService) RecordOutcome(ctx context.Context, companyID, txID uuid.UUID, input OutcomeInput) (*domain.SubmissionTransaction, error) {
	tx, err := s.txRepo.GetByID(ctx, companyID, txID)
	if err != nil {
		return nil, err
	}

	target := domain.StatusError
	if input.Success {
		target = domain.StatusSuccess
	}
	if err := domain.ValidateTransition(tx.Status, target); err != nil {
		return nil, err
	}

	if input.Success {
		if input.ExternalReference == "" {
			return nil, fmt.Errorf("recording success for transaction %s: %w", tx.ID, domain.ErrInvalidTransition)
		}
		tx.ExternalReference = &input.ExternalReference
		tx.ErrorCode = nil
	} else {
		tx.ErrorCode = &input.ErrorCode
	}
	tx.Status = target
	if err := s.txRepo.UpdateStatus(ctx, tx); err != nil {
		return nil, err
	}

	s.notifyOutcome(ctx, tx)
	return tx, nil
}

func (s *submissionService) Retry(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, *validator.ValidationResult, error) {
	tx, err := s.txRepo.GetByID(ctx, companyID, txID)
	if err != nil {
		return nil, nil, err
	}
	if err := domain.ValidateTransition(tx.Status, domain.StatusRetry); err != nil {
		return nil, nil, err
	}

	company, voyage, opts, err := s.loadValidationContext(ctx, companyID, tx.VoyageID)
	if err != nil {
		return nil, nil, err
	}
	result := s.voyageVal.Validate(ctx, company, voyage, tx.Operation, tx.Country, opts)
	if !result.IsValid {
		return nil, result, domain.ErrValidationFailed
	}

	if err := s.transition(ctx, tx, domain.StatusRetry); err != nil {
		return nil, result, err
	}
	if err := s.transition(ctx, tx, domain.StatusSending); err != nil {
		return nil, result, err
	}
	return tx, result, nil
}

func (s *submissionService) GetTransaction(ctx context.Context, companyID, txID uuid.UUID) (*domain.SubmissionTransaction, error) {
	return s.txRepo.GetByID(ctx, companyID, txID)
}

func (s *submissionService) ListByVoyage(ctx context.Context, companyID, voyageID uuid.UUID) ([]domain.SubmissionTransaction, error) {
	// Confirm the voyage belongs to the company before exposing its history.
	if _, err := s.voyageRepo.GetByID(ctx, companyID, voyageID); err != nil {
		return nil, err
	}
	return s.txRepo.ListByVoyage(ctx, voyageID)
}

// loadValidationContext gathers everything a validation pass needs: the
// company with its roles, the hydrated voyage, and uploaded attachment
// metadata keyed by attachment type.
func (s *submissionService) loadValidationContext(ctx context.Context, companyID, voyageID uuid.UUID) (*domain.Company, *domain.Voyage, validator.Options, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, validator.Options{}, err
	}
	voyage, err := s.voyageRepo.GetByID(ctx, companyID, voyageID)
	if err != nil {
		return nil, nil, validator.Options{}, err
	}

	attachments, err := s.attachmentRepo.ListByVoyage(ctx, voyageID)
	if err != nil {
		return nil, nil, validator.Options{}, err
	}
	uploaded := make(map[string]validator.AttachmentInfo, len(attachments))
	for _, a := range attachments {
		uploaded[a.AttachmentType] = validator.AttachmentInfo{
			FileName:  a.FileName,
			SizeBytes: a.SizeBytes,
			Extension: a.Extension,
		}
	}
	return company, voyage, validator.Options{UploadedAttachments: uploaded}, nil
}

func (s *submissionService) transition(ctx context.Context, tx *domain.SubmissionTransaction, target domain.TransactionStatus) error {
	if err := domain.ValidateTransition(tx.Status, target); err != nil {
		return err
	}
	tx.Status = target
	return s.txRepo.UpdateStatus(ctx, tx)
}

// notifyOutcome emails the submitting user about a terminal transaction.
// Notification failures are logged, never surfaced.
func (s *submissionService) notifyOutcome(ctx context.Context, tx *domain.SubmissionTransaction) {
	user, err := s.userRepo.GetByID(ctx, tx.CompanyID, tx.CreatedBy)
	if err != nil {
		log.Printf("submission outcome notification skipped for tx %s: %v", tx.ID, err)
		return
	}
	voyage, err := s.voyageRepo.GetByID(ctx, tx.CompanyID, tx.VoyageID)
	if err != nil {
		log.Printf("submission outcome notification skipped for tx %s: %v", tx.ID, err)
		return
	}

	outcome := port.SubmissionOutcome{
		VoyageNumber: voyage.VoyageNumber,
		Operation:    tx.Operation,
		Country:      tx.Country,
		Status:       tx.Status,
	}
	if tx.ExternalReference != nil {
		outcome.ExternalReference = *tx.ExternalReference
	}
	if tx.ErrorCode != nil {
		outcome.ErrorCode = *tx.ErrorCode
	}
	if err := s.email.SendSubmissionOutcome(ctx, user.Email, user.FullName, outcome); err != nil {
		log.Printf("sending submission outcome email for tx %s: %v", tx.ID, err)
	}
}
