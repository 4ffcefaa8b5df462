package validator

import (
	"regexp"
	"time"

	"aduanagw/internal/domain"
	"aduanagw/internal/validator/rules"
)

var voyageNumberPattern = regexp.MustCompile(`^(?i)[A-Z0-9_-]+$`)

// voyageFieldExtractors maps rule-catalog field keys to voyage accessors, so
// required-field messages name the exact field from the catalog.
var voyageFieldExtractors = map[string]func(*domain.Voyage) string{
	rules.FieldVoyageNumber:    func(v *domain.Voyage) string { return v.VoyageNumber },
	rules.FieldOriginPort:      func(v *domain.Voyage) string { return v.OriginPortCode },
	rules.FieldDestinationPort: func(v *domain.Voyage) string { return v.DestinationPortCode },
	rules.FieldDepartureDate: func(v *domain.Voyage) string {
		if v.DepartureDate == nil {
			return ""
		}
		return v.DepartureDate.Format(time.RFC3339)
	},
}

// checkVoyageFields is stage 4: required voyage fields, voyage number shape,
// date windows, and port codes.
func (p *pass) checkVoyageFields() {
	p.result.recordCheck(checkVoyageFields)
	v := p.voyage

	for _, field := range p.ruleSet.RequiredVoyageFields {
		extract, known := voyageFieldExtractors[field]
		if !known {
			continue
		}
		if extract(v) == "" {
			p.result.addError("El campo %s del viaje es obligatorio", field)
		}
	}

	if v.VoyageNumber != "" {
		if len(v.VoyageNumber) > maxVoyageNumberLength {
			p.result.addError("El número de viaje supera el máximo de %d caracteres", maxVoyageNumberLength)
		}
		if !voyageNumberPattern.MatchString(v.VoyageNumber) {
			p.result.addError("El número de viaje %q contiene caracteres no permitidos", v.VoyageNumber)
		}
	}

	p.checkVoyageDates()
	p.checkVoyagePorts()
}

func (p *pass) checkVoyageDates() {
	v := p.voyage
	if v.DepartureDate != nil {
		dep := v.DepartureDate.UTC()
		todayStart := time.Date(p.now.Year(), p.now.Month(), p.now.Day(), 0, 0, 0, 0, time.UTC)
		if !p.ruleSet.AllowPastDepartureDate && dep.Before(todayStart) {
			p.result.addError("La fecha de salida no puede estar en el pasado")
		}
		if dep.Year() < minDepartureYear || dep.Year() > maxDepartureYear {
			p.result.addError("El año de la fecha de salida debe estar entre %d y %d", minDepartureYear, maxDepartureYear)
		}

		if v.EstimatedArrivalDate != nil {
			arr := v.EstimatedArrivalDate.UTC()
			if arr.Before(dep) {
				p.result.addError("La fecha estimada de arribo no puede ser anterior a la fecha de salida")
			} else if arr.Sub(dep) > maxArrivalGapDays*24*time.Hour {
				p.result.addWarning("La fecha estimada de arribo supera los %d días desde la salida", maxArrivalGapDays)
			}
		}
	}
}

func (p *pass) checkVoyagePorts() {
	v := p.voyage
	if v.OriginPortCode != "" && !rules.KnownPorts[v.OriginPortCode] {
		p.result.addWarning("El puerto de origen %s no figura en la lista de puertos conocidos", v.OriginPortCode)
	}
	if v.DestinationPortCode != "" && !rules.KnownPorts[v.DestinationPortCode] {
		p.result.addWarning("El puerto de destino %s no figura en la lista de puertos conocidos", v.DestinationPortCode)
	}
	if v.OriginPortCode != "" && v.OriginPortCode == v.DestinationPortCode {
		p.result.addError("El puerto de origen y el puerto de destino no pueden ser iguales")
	}
	if p.ruleSet.RequiresTransshipmentPort && v.TransshipmentPortCode == "" {
		p.result.addError("El puerto de transbordo es obligatorio para la operación %s", p.operation)
	}
}
