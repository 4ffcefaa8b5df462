// Command revalidate runs the validation pipeline over every voyage of a
// company without opening transactions. Useful after a rule catalog change to
// see which previously accepted manifests would now be refused.
// Usage: go run ./cmd/revalidate <company-id> <operation> <country>
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"aduanagw/internal/certificate"
	"aduanagw/internal/config"
	"aduanagw/internal/domain"
	"aduanagw/internal/ledger"
	"aduanagw/internal/repository/postgres"
	"aduanagw/internal/validator"
	"aduanagw/internal/validator/rules"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 4 {
		fmt.Println("Usage: revalidate <company-id> <operation> <country>")
		os.Exit(1)
	}
	companyID, err := uuid.Parse(os.Args[1])
	if err != nil {
		return fmt.Errorf("invalid company id: %w", err)
	}
	operation := domain.Operation(os.Args[2])
	country := domain.Country(os.Args[3])

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	companyRepo := postgres.NewCompanyRepo(db)
	voyageRepo := postgres.NewVoyageRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	txRepo := postgres.NewTransactionRepo(db)
	certRepo := postgres.NewCertificateRepo(db)

	voyageVal := validator.New(rules.NewCatalog(), ledger.New(txRepo), certificate.NewManager(certRepo))

	ctx := context.Background()
	company, err := companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading company: %w", err)
	}

	offset := 0
	total := 0
	invalid := 0
	for {
		voyages, _, err := voyageRepo.ListByCompany(ctx, companyID, offset, batchSize)
		if err != nil {
			return fmt.Errorf("listing voyages at offset %d: %w", offset, err)
		}
		if len(voyages) == 0 {
			break
		}

		for i := range voyages {
			voyage, err := voyageRepo.GetByID(ctx, companyID, voyages[i].ID)
			if err != nil {
				log.Printf("WARN: skipping voyage %s: %v", voyages[i].ID, err)
				continue
			}

			attachments, err := attachmentRepo.ListByVoyage(ctx, voyage.ID)
			if err != nil {
				log.Printf("WARN: skipping voyage %s: %v", voyage.ID, err)
				continue
			}
			uploaded := make(map[string]validator.AttachmentInfo, len(attachments))
			for _, a := range attachments {
				uploaded[a.AttachmentType] = validator.AttachmentInfo{
					FileName:  a.FileName,
					SizeBytes: a.SizeBytes,
					Extension: a.Extension,
				}
			}

			result := voyageVal.Validate(ctx, company, voyage, operation, country,
				validator.Options{UploadedAttachments: uploaded})
			total++
			if !result.IsValid {
				invalid++
				log.Printf("voyage %s (%s): %s", voyage.VoyageNumber, voyage.ID, result.Summary())
				for _, msg := range result.Errors {
					log.Printf("  - %s", msg)
				}
			}
		}
		offset += len(voyages)
	}

	log.Printf("Revalidation complete: %d voyages checked, %d invalid", total, invalid)
	return nil
}
