package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"aduanagw/internal/config"
	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

// AttachmentUploadInput is the DTO for attachment upload requests.
type AttachmentUploadInput struct {
	CompanyID      uuid.UUID
	VoyageID       uuid.UUID
	UploadedBy     uuid.UUID
	AttachmentType string
	File           multipart.File
	Header         *multipart.FileHeader
}

// AttachmentService defines the voyage attachment management contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	ListByVoyage(ctx context.Context, companyID, voyageID uuid.UUID) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, companyID, voyageID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, companyID, voyageID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	attachmentRepo port.AttachmentRepository
	voyageRepo     port.VoyageRepository
	storage        port.ObjectStorage
	cfg            *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	attachmentRepo port.AttachmentRepository,
	voyageRepo port.VoyageRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		voyageRepo:     voyageRepo,
		storage:        storage,
		cfg:            cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	// Voyage must exist and belong to the company
	if _, err := s.voyageRepo.GetByID(ctx, input.CompanyID, input.VoyageID); err != nil {
		return nil, err
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detected := http.DetectContentType(buf[:n])
	if !contentTypeMatches(fileType, detected) {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	attachmentID := uuid.New()
	storageKey := fmt.Sprintf("companies/%s/voyages/%s/adjuntos/%s/%s",
		input.CompanyID, input.VoyageID, attachmentID, input.Header.Filename)

	attachment := &domain.Attachment{
		VoyageID:       input.VoyageID,
		AttachmentType: input.AttachmentType,
		FileName:       input.Header.Filename,
		Extension:      ext,
		SizeBytes:      input.Header.Size,
		StorageKey:     storageKey,
		UploadedBy:     input.UploadedBy,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) for voyage %s",
		input.Header.Filename, input.AttachmentType, input.Header.Size, input.VoyageID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         storageKey,
		Body:        input.File,
		ContentType: domain.AllowedFileTypes[fileType],
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: storage upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// Metadata write failed after the object landed; remove the orphan.
		_ = s.storage.Delete(ctx, s.cfg.Bucket, storageKey)
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) ListByVoyage(ctx context.Context, companyID, voyageID uuid.UUID) ([]domain.Attachment, error) {
	if _, err := s.voyageRepo.GetByID(ctx, companyID, voyageID); err != nil {
		return nil, err
	}
	return s.attachmentRepo.ListByVoyage(ctx, voyageID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, companyID, voyageID, attachmentID uuid.UUID) (string, error) {
	attachment, err := s.find(ctx, companyID, voyageID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, attachment.StorageKey, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, companyID, voyageID, attachmentID uuid.UUID) error {
	attachment, err := s.find(ctx, companyID, voyageID, attachmentID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, attachment.StorageKey); err != nil {
		log.Printf("attachmentService.Delete: failed to delete from storage: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.attachmentRepo.Delete(ctx, voyageID, attachmentID)
}

func (s *attachmentService) find(ctx context.Context, companyID, voyageID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	if _, err := s.voyageRepo.GetByID(ctx, companyID, voyageID); err != nil {
		return nil, err
	}
	attachments, err := s.attachmentRepo.ListByVoyage(ctx, voyageID)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		if attachments[i].ID == attachmentID {
			return &attachments[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// contentTypeMatches reports whether the sniffed content type is acceptable
// for the declared file type. XML files sniff as text/plain or text/xml
// depending on their prolog.
func contentTypeMatches(ft domain.FileType, detected string) bool {
	switch ft {
	case domain.FileTypePDF:
		return strings.HasPrefix(detected, "application/pdf")
	case domain.FileTypeJPG:
		return strings.HasPrefix(detected, "image/jpeg")
	case domain.FileTypePNG:
		return strings.HasPrefix(detected, "image/png")
	case domain.FileTypeXML:
		return strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "text/plain") ||
			strings.HasPrefix(detected, "application/xml")
	default:
		return false
	}
}
