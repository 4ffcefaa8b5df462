package certificate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aduanagw/internal/certificate"
	"aduanagw/internal/domain"
	"aduanagw/mocks"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validCert(companyID uuid.UUID, country domain.Country) *domain.Certificate {
	return &domain.Certificate{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Country:    country,
		Subject:    "CN=Naviera del Litoral SA",
		Thumbprint: "ab12cd34",
		NotBefore:  fixedNow.AddDate(-1, 0, 0),
		NotAfter:   fixedNow.AddDate(1, 0, 0),
	}
}

func TestValidateCompanyCertificate_Valid(t *testing.T) {
	companyID := uuid.New()
	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryArgentina).
		Return(validCert(companyID, domain.CountryArgentina), nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryArgentina)

	require.NoError(t, err)
	assert.True(t, status.IsValid)
	assert.Empty(t, status.Errors)
	assert.Empty(t, status.Warnings)
}

func TestValidateCompanyCertificate_NotRegistered(t *testing.T) {
	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, mock.Anything, domain.CountryArgentina).
		Return(nil, domain.ErrCertificateNotFound)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), uuid.New(), domain.CountryArgentina)

	require.NoError(t, err, "a missing certificate is a validation outcome, not a failure")
	assert.False(t, status.IsValid)
	assert.Contains(t, status.Errors,
		"La empresa no tiene un certificado digital registrado para AFIP")
}

func TestValidateCompanyCertificate_AuthorityNames(t *testing.T) {
	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrCertificateNotFound)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })

	ar, err := mgr.ValidateCompanyCertificate(context.Background(), uuid.New(), domain.CountryArgentina)
	require.NoError(t, err)
	assert.Contains(t, ar.Errors[0], "AFIP")

	py, err := mgr.ValidateCompanyCertificate(context.Background(), uuid.New(), domain.CountryParaguay)
	require.NoError(t, err)
	assert.Contains(t, py.Errors[0], "DNA")
}

func TestValidateCompanyCertificate_Revoked(t *testing.T) {
	companyID := uuid.New()
	cert := validCert(companyID, domain.CountryParaguay)
	cert.Revoked = true

	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryParaguay).Return(cert, nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryParaguay)

	require.NoError(t, err)
	assert.False(t, status.IsValid)
	assert.Contains(t, status.Errors, "El certificado digital para DNA fue revocado")
}

func TestValidateCompanyCertificate_NotYetValid(t *testing.T) {
	companyID := uuid.New()
	cert := validCert(companyID, domain.CountryArgentina)
	cert.NotBefore = fixedNow.AddDate(0, 1, 0)

	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryArgentina).Return(cert, nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryArgentina)

	require.NoError(t, err)
	assert.False(t, status.IsValid)
	assert.Contains(t, status.Errors, "El certificado digital para AFIP aún no entró en vigencia")
}

func TestValidateCompanyCertificate_Expired(t *testing.T) {
	companyID := uuid.New()
	cert := validCert(companyID, domain.CountryArgentina)
	cert.NotAfter = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryArgentina).Return(cert, nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryArgentina)

	require.NoError(t, err)
	assert.False(t, status.IsValid)
	assert.Contains(t, status.Errors,
		"El certificado digital para AFIP está vencido desde el 01/03/2025")
}

func TestValidateCompanyCertificate_ExpiryWarning(t *testing.T) {
	companyID := uuid.New()
	cert := validCert(companyID, domain.CountryArgentina)
	cert.NotAfter = fixedNow.Add(12*24*time.Hour + time.Hour)

	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryArgentina).Return(cert, nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryArgentina)

	require.NoError(t, err)
	assert.True(t, status.IsValid, "an expiring certificate is still usable")
	assert.Contains(t, status.Warnings, "El certificado digital para AFIP vence en 12 días")
}

func TestValidateCompanyCertificate_NoWarningFarFromExpiry(t *testing.T) {
	companyID := uuid.New()
	cert := validCert(companyID, domain.CountryArgentina)
	cert.NotAfter = fixedNow.Add(31*24*time.Hour + time.Hour)

	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, companyID, domain.CountryArgentina).Return(cert, nil)

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), companyID, domain.CountryArgentina)

	require.NoError(t, err)
	assert.True(t, status.IsValid)
	assert.Empty(t, status.Warnings)
}

func TestValidateCompanyCertificate_RepositoryError(t *testing.T) {
	repo := new(mocks.MockCertificateRepo)
	repo.On("GetActive", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	mgr := certificate.NewManagerWithClock(repo, func() time.Time { return fixedNow })
	status, err := mgr.ValidateCompanyCertificate(context.Background(), uuid.New(), domain.CountryArgentina)

	assert.Nil(t, status)
	assert.ErrorContains(t, err, "certificate.ValidateCompanyCertificate")
}
