package validator

import (
	"aduanagw/internal/domain"
	"aduanagw/internal/validator/rules"
)

var vesselFieldExtractors = map[string]func(*domain.Vessel) string{
	rules.FieldVesselName: func(v *domain.Vessel) string { return v.Name },
	rules.FieldVesselCode: func(v *domain.Vessel) string { return v.Code },
	rules.FieldVesselFlag: func(v *domain.Vessel) string { return v.FlagCountry },
}

// checkVessel is stage 5. Skipped entirely when the rule set requires no
// vessel fields.
func (p *pass) checkVessel() {
	if len(p.ruleSet.RequiredVesselFields) == 0 {
		return
	}
	p.result.recordCheck(checkVessel)

	vessel := p.voyage.Vessel
	if vessel == nil {
		p.result.addError("El viaje no tiene un buque asignado")
		return
	}

	for _, field := range p.ruleSet.RequiredVesselFields {
		extract, known := vesselFieldExtractors[field]
		if !known {
			continue
		}
		if extract(vessel) == "" {
			p.result.addError("El campo %s del buque es obligatorio", field)
		}
	}

	if len(vessel.Code) > maxVesselCodeLength {
		p.result.addError("El código del buque supera el máximo de %d caracteres", maxVesselCodeLength)
	}

	if p.ruleSet.RequiresCaptainLicense {
		if vessel.CaptainName == "" {
			p.result.addError("El nombre del capitán del buque es obligatorio")
		}
		if vessel.CaptainLicense == "" {
			p.result.addError("La licencia del capitán del buque es obligatoria")
		} else if len(vessel.CaptainLicense) > maxCaptainLicenseLength {
			p.result.addError("La licencia del capitán supera el máximo de %d caracteres", maxCaptainLicenseLength)
		}
	}

	if vessel.FlagCountry != "" && !rules.RegionalFlags[vessel.FlagCountry] {
		p.result.addWarning("La bandera del buque (%s) no pertenece a la región; puede requerir autorización adicional", vessel.FlagCountry)
	}
}
