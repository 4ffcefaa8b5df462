package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCompanyInactive      = errors.New("company is inactive")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists for this company")
	ErrUnsupportedFileType  = errors.New("unsupported attachment file type")
	ErrFileTooLarge         = errors.New("attachment exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("attachment upload to storage failed")
	ErrVoyageNotFound       = errors.New("voyage not found")
	ErrTransactionNotFound  = errors.New("submission transaction not found")
	ErrInvalidTransition    = errors.New("invalid transaction status transition")
	ErrValidationFailed     = errors.New("voyage failed validation")
	ErrSubmissionInFlight   = errors.New("a submission is already in flight for this voyage and operation")
	ErrInsufficientRole     = errors.New("insufficient role for this action")
	ErrCertificateNotFound  = errors.New("no certificate registered for this company and country")
)
