package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aduanagw/internal/domain"
	"aduanagw/internal/port"
)

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, attachment *domain.Attachment) error {
	attachment.ID = uuid.New()
	attachment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO attachments (id, voyage_id, attachment_type, file_name, extension, size_bytes, storage_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		attachment.ID, attachment.VoyageID, attachment.AttachmentType,
		attachment.FileName, attachment.Extension, attachment.SizeBytes,
		attachment.StorageKey, attachment.UploadedBy, attachment.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) ListByVoyage(ctx context.Context, voyageID uuid.UUID) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := r.db.SelectContext(ctx, &attachments,
		"SELECT * FROM attachments WHERE voyage_id = $1 ORDER BY created_at ASC", voyageID)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByVoyage: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, voyageID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE id = $1 AND voyage_id = $2", attachmentID, voyageID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
