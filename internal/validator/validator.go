// Package validator implements the voyage validation pipeline that decides
// whether a voyage is eligible for submission to a customs webservice
// operation, and the grouping views over a completed result. A pass runs
// every stage in order, accumulating errors and warnings; business-rule
// violations never surface as Go errors, and collaborator failures degrade to
// a generic internal-error entry so the caller always receives a complete
// result.
package validator

import (
	"context"
	"log"
	"time"

	"aduanagw/internal/domain"
	"aduanagw/internal/ledger"
	"aduanagw/internal/port"
	"aduanagw/internal/validator/rules"
)

// Operational limits. Fixed constants; see db/migrations for the store-side
// duplicate guard that backs the in-flight check.
const (
	failureWindow             = 24 * time.Hour
	maxFailuresInWindow       = 5
	minDepartureYear          = 2020
	maxDepartureYear          = 2030
	maxArrivalGapDays         = 90
	staleDepartureDays        = 30
	minCargoDensity           = 50.0
	maxCargoDensity           = 5000.0
	maxShipmentsParaguay      = 500
	maxShipmentsArgentina     = 1000
	containersPerShipmentWarn = 50
	totalWeightWarnKg         = 50000.0
	maxCargoDescriptionChars  = 500
	maxVoyageNumberLength     = 20
	maxVesselCodeLength       = 15
	maxCaptainLicenseLength   = 20
)

// Stage names recorded in ValidationResult.PerformedChecks.
const (
	checkSystemPreconditions    = "system_preconditions"
	checkCertificate            = "certificate"
	checkOperationPreconditions = "operation_preconditions"
	checkVoyageFields           = "voyage_fields"
	checkVessel                 = "vessel"
	checkShipments              = "shipments"
	checkContainers             = "containers"
	checkOperationFlow          = "operation_flow"
	checkAttachments            = "attachments"
	checkOperationRules         = "operation_rules"
	checkAggregateLimits        = "aggregate_limits"
)

const internalErrorMessage = "Error interno del sistema durante la validación"

// AttachmentInfo describes one caller-supplied uploaded attachment.
type AttachmentInfo struct {
	FileName  string
	SizeBytes int64
	Extension string
}

// Options carries the caller-supplied context for one validation pass.
type Options struct {
	// UploadedAttachments maps attachment type to the uploaded file's
	// metadata, keyed the way the rule catalog names attachment types.
	UploadedAttachments map[string]AttachmentInfo
}

// VoyageValidator orchestrates the full validation pipeline.
type VoyageValidator struct {
	catalog *rules.Catalog
	ledger  *ledger.Ledger
	certs   port.CertificateManager
	nowFn   func() time.Time
}

// New creates a VoyageValidator with its collaborators.
func New(catalog *rules.Catalog, txLedger *ledger.Ledger, certs port.CertificateManager) *VoyageValidator {
	return &VoyageValidator{
		catalog: catalog,
		ledger:  txLedger,
		certs:   certs,
		nowFn:   time.Now,
	}
}

// WithClock overrides the validator's time source. Intended for tests.
func (v *VoyageValidator) WithClock(nowFn func() time.Time) *VoyageValidator {
	v.nowFn = nowFn
	return v
}

// pass is the accumulator for a single Validate invocation. It is never
// shared across calls.
type pass struct {
	validator *VoyageValidator
	company   *domain.Company
	voyage    *domain.Voyage
	operation domain.Operation
	country   domain.Country
	ruleSet   rules.RuleSet
	snapshot  *ledger.Snapshot
	opts      Options
	result    *ValidationResult
	now       time.Time
}

// Validate runs the full pipeline for one (voyage, operation, country)
// triple. It never returns an error: expected rule violations land in the
// result's Errors/Warnings and unexpected collaborator failures degrade to a
// generic internal-error entry.
func (v *VoyageValidator) Validate(
	ctx context.Context,
	company *domain.Company,
	voyage *domain.Voyage,
	operation domain.Operation,
	country domain.Country,
	opts Options,
) *ValidationResult {
	now := v.nowFn().UTC()
	result := newResult(voyage.ID, operation, country, now)

	p := &pass{
		validator: v,
		company:   company,
		voyage:    voyage,
		operation: operation,
		country:   country,
		opts:      opts,
		result:    result,
		now:       now,
	}
	p.run(ctx)

	result.finalize()
	return result
}

func (p *pass) run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("validator: recovered panic during validation of voyage %s: %v", p.voyage.ID, rec)
			p.result.addError(internalErrorMessage)
		}
	}()

	if ok := p.checkSystemPreconditions(); !ok {
		// No rule set resolved; every remaining stage depends on it.
		return
	}

	p.checkCertificate(ctx)
	p.loadSnapshot(ctx)
	p.checkOperationPreconditions()
	p.checkVoyageFields()
	p.checkVessel()
	p.checkShipments()
	p.checkContainers()
	p.checkOperationFlow()
	p.checkAttachments()
	p.checkOperationRules()
	p.checkAggregateLimits()
}

// checkSystemPreconditions is stage 1: company state, webservice capability,
// rule catalog resolution, and the authorization role table. Returns false
// when the (country, operation) pair is unsupported, in which case the pass
// stops with exactly that one error.
func (p *pass) checkSystemPreconditions() bool {
	p.result.recordCheck(checkSystemPreconditions)

	if !p.company.IsActive {
		p.result.addError("La empresa no está activa en el sistema")
	}
	if !p.company.WebserviceEnabled {
		p.result.addError("La empresa no tiene habilitado el acceso al webservice aduanero")
	}

	ruleSet, supported := p.validator.catalog.Lookup(p.country, p.operation)
	if !supported {
		p.result.addError("Combinación no soportada: %s para %s", p.operation, p.country)
		return false
	}
	p.ruleSet = ruleSet

	role, hasRole := p.validator.catalog.RequiredRole(p.country, p.operation)
	if hasRole && !p.company.HasRole(role) {
		p.result.addError("La empresa no posee el rol %q requerido para la operación %s", role, p.operation)
	}
	return true
}

// checkCertificate is stage 2: delegate to the certificate manager and merge
// its reported errors and warnings verbatim.
func (p *pass) checkCertificate(ctx context.Context) {
	p.result.recordCheck(checkCertificate)

	status, err := p.validator.certs.ValidateCompanyCertificate(ctx, p.company.ID, p.country)
	if err != nil {
		log.Printf("validator: certificate manager failed for company %s: %v", p.company.ID, err)
		p.result.addError(internalErrorMessage)
		return
	}
	p.result.Errors = append(p.result.Errors, status.Errors...)
	p.result.Warnings = append(p.result.Warnings, status.Warnings...)
}

// loadSnapshot reads the voyage's transaction history once; stages 3 and 8
// derive every history-dependent check from this snapshot.
func (p *pass) loadSnapshot(ctx context.Context) {
	snapshot, err := p.validator.ledger.Snapshot(ctx, p.voyage.ID)
	if err != nil {
		log.Printf("validator: ledger snapshot failed for voyage %s: %v", p.voyage.ID, err)
		p.result.addError(internalErrorMessage)
		return
	}
	p.snapshot = snapshot
}

// checkOperationPreconditions is stage 3: prior-manifest and rectification
// rules from the rule set.
func (p *pass) checkOperationPreconditions() {
	p.result.recordCheck(checkOperationPreconditions)
	if p.snapshot == nil {
		return
	}

	if p.ruleSet.RequiresParaguayReference {
		if ref := p.snapshot.ExternalReference(domain.OperationManifiesto); ref == nil {
			p.result.addError("No existe un manifiesto exitoso con referencia externa de la DNA para este viaje")
		}
	}
	if p.ruleSet.RequiresPriorManifestSent {
		if !p.snapshot.HasSuccessfulOperation(domain.OperationManifiesto) {
			p.result.addError("Debe enviarse con éxito el manifiesto antes de la operación %s", p.operation)
		}
	}
	if p.ruleSet.MaxRectifications != nil {
		count := p.snapshot.CountRectifications(p.operation)
		if count >= *p.ruleSet.MaxRectifications {
			p.result.addError("Se alcanzó el número máximo de rectificaciones permitidas (%d)", *p.ruleSet.MaxRectifications)
		}
	}
}

// checkOperationFlow is stage 8: duplicate in-flight, trailing failure cap,
// and the country-specific flow rules.
func (p *pass) checkOperationFlow() {
	p.result.recordCheck(checkOperationFlow)
	if p.snapshot == nil {
		return
	}

	if p.snapshot.IsOperationInFlight(p.operation) {
		p.result.addError("Ya existe una transacción en curso para la operación %s de este viaje", p.operation)
	}

	failures := p.snapshot.CountFailuresSince(p.operation, p.now.Add(-failureWindow))
	if failures >= maxFailuresInWindow {
		p.result.addError("Se alcanzó el límite de %d intentos fallidos en las últimas 24 horas", maxFailuresInWindow)
	}

	if flowCheck, ok := countryFlowRules[p.country]; ok {
		flowCheck(p)
	}
}

// checkOperationRules is stage 10: the hand-coded cross-field rules keyed by
// (country, operation).
func (p *pass) checkOperationRules() {
	p.result.recordCheck(checkOperationRules)

	if extra, ok := extraRules[rules.Key{Country: p.country, Operation: p.operation}]; ok {
		extra(p)
	}
}
