package main

import (
	"fmt"
	"log"

	"aduanagw/internal/certificate"
	"aduanagw/internal/config"
	"aduanagw/internal/email/noop"
	"aduanagw/internal/email/ses"
	"aduanagw/internal/handler"
	"aduanagw/internal/ledger"
	"aduanagw/internal/port"
	"aduanagw/internal/repository/postgres"
	"aduanagw/internal/router"
	"aduanagw/internal/service"
	s3storage "aduanagw/internal/storage/s3"
	"aduanagw/internal/validator"
	"aduanagw/internal/validator/rules"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)
	voyageRepo := postgres.NewVoyageRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	txRepo := postgres.NewTransactionRepo(db)
	certRepo := postgres.NewCertificateRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize validation core
	catalog := rules.NewCatalog()
	txLedger := ledger.New(txRepo)
	certManager := certificate.NewManager(certRepo)
	voyageVal := validator.New(catalog, txLedger, certManager)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	voyageSvc := service.NewVoyageService(voyageRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, voyageRepo, s3Client, &cfg.S3)
	submissionSvc := service.NewSubmissionService(
		companyRepo, userRepo, voyageRepo, attachmentRepo, txRepo, voyageVal, emailSender)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	voyageH := handler.NewVoyageHandler(voyageSvc)
	validationH := handler.NewValidationHandler(submissionSvc)
	submissionH := handler.NewSubmissionHandler(submissionSvc)
	attachmentH := handler.NewAttachmentHandler(attachmentSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, authH, userH, voyageH, validationH, submissionH, attachmentH, healthH, cfg.Server.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
