package validator

import "aduanagw/internal/domain"

// flowFunc is a country-specific flow rule run during stage 8 with the
// ledger snapshot already loaded.
type flowFunc func(*pass)

// countryFlowRules is the explicit dispatch table for cross-operation flow
// checks. Prior-manifest requirements are rule-set flags handled in stage 3;
// this table carries only the remaining warnings and cross-references.
var countryFlowRules = map[domain.Country]flowFunc{
	domain.CountryParaguay:  paraguayFlowRules,
	domain.CountryArgentina: argentinaFlowRules,
}

func paraguayFlowRules(p *pass) {
	switch p.operation {
	case domain.OperationCierre:
		if !p.snapshot.HasSuccessfulOperation(domain.OperationAdjuntos) {
			p.result.addWarning("Se solicita el cierre sin un envío exitoso de adjuntos para este viaje")
		}
	case domain.OperationConsulta:
		manifestSent := false
		for _, prior := range p.snapshot.PriorOperations(p.operation) {
			if prior.Operation == domain.OperationManifiesto {
				manifestSent = true
				break
			}
		}
		if !manifestSent {
			p.result.addWarning("Aún no se envió ningún manifiesto para este viaje")
		}
	}
}

func argentinaFlowRules(p *pass) {
	if p.operation != domain.OperationDesconsolidado {
		return
	}
	// Transbordo's transshipment-port requirement is a rule-set flag checked
	// with the voyage fields.
	if !p.snapshot.HasSuccessfulOperation(domain.OperationAnticipada) &&
		!p.snapshot.HasSuccessfulOperation(domain.OperationMicDta) {
		p.result.addWarning("No se registra una operación anticipada o MIC/DTA exitosa para este viaje")
	}
}
