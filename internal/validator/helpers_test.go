package validator_test

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aduanagw/internal/domain"
	"aduanagw/internal/ledger"
	"aduanagw/internal/port"
	"aduanagw/internal/validator"
	"aduanagw/internal/validator/checkdigit"
	"aduanagw/internal/validator/rules"
	"aduanagw/mocks"
)

// fixedNow pins the validator clock so date-window checks are deterministic.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

func validTaxID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, checkdigit.ComputeFiscalCheckDigit(prefix))
}

func validContainerNumber(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, checkdigit.ComputeContainerCheckDigit(prefix))
}

func validCompany() *domain.Company {
	return &domain.Company{
		ID:                uuid.New(),
		Name:              "Naviera del Litoral SA",
		TaxID:             validTaxID("3012345678"),
		IsActive:          true,
		WebserviceEnabled: true,
		Roles:             []string{"Cargas", "Desconsolidados", "Transbordos", "Manifiestos", "Consultas"},
	}
}

func validVessel() *domain.Vessel {
	return &domain.Vessel{
		ID:                uuid.New(),
		Name:              "Rio Parana",
		Code:              "RPAR-01",
		FlagCountry:       "AR",
		CaptainName:       "Juan Gomez",
		CaptainLicense:    "LIC-4471",
		ContainerCapacity: 100,
	}
}

func validShipment() domain.Shipment {
	return domain.Shipment{
		ID:               uuid.New(),
		BLNumber:         "BL0001",
		ShipperName:      "Exportadora del Sur SA",
		ShipperTaxID:     validTaxID("3012345678"),
		ConsigneeName:    "Importadora Guarani SRL",
		ConsigneeTaxID:   validTaxID("2712345678"),
		CargoDescription: "Harina de soja a granel en bolsas",
		PackagingType:    domain.PackagingContainer,
		GrossWeight:      1000,
		NetWeight:        800,
		Volume:           2,
		ContainersLoaded: 1,
		Containers: []domain.Container{
			{
				ID:     uuid.New(),
				Number: validContainerNumber("MSCU123456"),
				Type:   "40HC",
			},
		},
	}
}

func validVoyage(companyID uuid.UUID) *domain.Voyage {
	vessel := validVessel()
	vessel.CompanyID = companyID
	return &domain.Voyage{
		ID:                   uuid.New(),
		CompanyID:            companyID,
		VoyageNumber:         "V2025-0147",
		VesselID:             &vessel.ID,
		OriginPortCode:       "ARBUE",
		DestinationPortCode:  "PYASU",
		DepartureDate:        timePtr(fixedNow.AddDate(0, 0, 5)),
		EstimatedArrivalDate: timePtr(fixedNow.AddDate(0, 0, 15)),
		Vessel:               vessel,
		Shipments:            []domain.Shipment{validShipment()},
	}
}

// harness wires a validator with a stubbed certificate manager and an
// in-memory transaction history.
type harness struct {
	validator *validator.VoyageValidator
	certs     *mocks.MockCertificateManager
	txRepo    *mocks.MockTransactionRepo
}

func newHarness(history []domain.SubmissionTransaction) *harness {
	certs := new(mocks.MockCertificateManager)
	certs.On("ValidateCompanyCertificate", mock.Anything, mock.Anything, mock.Anything).
		Return(&port.CertificateStatus{IsValid: true}, nil)

	txRepo := new(mocks.MockTransactionRepo)
	txRepo.On("ListByVoyage", mock.Anything, mock.Anything).Return(history, nil)

	v := validator.New(rules.NewCatalog(), ledger.New(txRepo), certs).
		WithClock(func() time.Time { return fixedNow })

	return &harness{validator: v, certs: certs, txRepo: txRepo}
}

func historyTx(operation domain.Operation, status domain.TransactionStatus) domain.SubmissionTransaction {
	return domain.SubmissionTransaction{
		ID:        uuid.New(),
		Operation: operation,
		Status:    status,
		CreatedAt: fixedNow.Add(-1 * time.Hour),
		UpdatedAt: fixedNow.Add(-1 * time.Hour),
	}
}

func successfulManifest() domain.SubmissionTransaction {
	tx := historyTx(domain.OperationManifiesto, domain.StatusSuccess)
	ref := "DNA-REF-001"
	tx.ExternalReference = &ref
	return tx
}
