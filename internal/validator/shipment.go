package validator

import (
	"fmt"
	"regexp"

	"aduanagw/internal/domain"
	"aduanagw/internal/validator/checkdigit"
	"aduanagw/internal/validator/rules"
)

var blNumberPattern = regexp.MustCompile(`^[A-Z0-9_/-]+$`)

var shipmentFieldExtractors = map[string]func(*domain.Shipment) string{
	rules.FieldBLNumber:         func(s *domain.Shipment) string { return s.BLNumber },
	rules.FieldShipperName:      func(s *domain.Shipment) string { return s.ShipperName },
	rules.FieldShipperTaxID:     func(s *domain.Shipment) string { return s.ShipperTaxID },
	rules.FieldConsigneeName:    func(s *domain.Shipment) string { return s.ConsigneeName },
	rules.FieldConsigneeTaxID:   func(s *domain.Shipment) string { return s.ConsigneeTaxID },
	rules.FieldCargoDescription: func(s *domain.Shipment) string { return s.CargoDescription },
}

// shipmentLabel names a shipment in messages: its BL number when present,
// otherwise its 1-based position.
func shipmentLabel(s *domain.Shipment, idx int) string {
	if s.BLNumber != "" {
		return s.BLNumber
	}
	return fmt.Sprintf("#%d", idx+1)
}

// checkShipments is stage 6: per-BL required fields, BL number shape and
// length, fiscal check digits, weights, and duplicate BL detection.
func (p *pass) checkShipments() {
	p.result.recordCheck(checkShipments)

	shipments := p.voyage.Shipments
	if len(shipments) == 0 {
		p.result.addError("El viaje no tiene ningún conocimiento de embarque cargado")
		return
	}

	seen := make(map[string]bool, len(shipments))
	for i := range shipments {
		s := &shipments[i]
		label := shipmentLabel(s, i)

		for _, field := range p.ruleSet.RequiredShipmentFields {
			extract, known := shipmentFieldExtractors[field]
			if !known {
				continue
			}
			if extract(s) == "" {
				p.result.addError("El conocimiento de embarque %s no tiene el campo obligatorio %s", label, field)
			}
		}

		if s.BLNumber != "" {
			if len(s.BLNumber) > p.ruleSet.MaxBLNumberLength {
				p.result.addError("El número de conocimiento de embarque %s supera el máximo de %d caracteres", s.BLNumber, p.ruleSet.MaxBLNumberLength)
			}
			if !blNumberPattern.MatchString(s.BLNumber) {
				p.result.addError("El número de conocimiento de embarque %q contiene caracteres no permitidos", s.BLNumber)
			}
			if seen[s.BLNumber] {
				p.result.addError("Número de conocimiento de embarque duplicado: %s", s.BLNumber)
			}
			seen[s.BLNumber] = true
		}

		if p.ruleSet.RequiresMasterBillOfLading && s.MasterBLNumber == "" {
			p.result.addError("El conocimiento de embarque %s no tiene el conocimiento máster asociado", label)
		}

		if p.ruleSet.ValidateFiscalIDCheckDigit {
			p.checkFiscalID(label, "embarcador", s.ShipperTaxID)
			p.checkFiscalID(label, "consignatario", s.ConsigneeTaxID)
		}

		p.checkShipmentWeights(s, label)
	}
}

// checkFiscalID validates a CUIT/RUC when present; presence itself is
// enforced by the required-field sets.
func (p *pass) checkFiscalID(label, party, rawID string) {
	if rawID == "" {
		return
	}
	normalized := checkdigit.NormalizeFiscalID(rawID)
	if len(normalized) != 11 {
		p.result.addError("El CUIT/RUC del %s del conocimiento de embarque %s debe tener 11 dígitos", party, label)
		return
	}
	if !checkdigit.ValidateFiscalID(normalized) {
		p.result.addError("El CUIT/RUC del %s del conocimiento de embarque %s tiene un dígito verificador inválido", party, label)
	}
}

func (p *pass) checkShipmentWeights(s *domain.Shipment, label string) {
	if s.GrossWeight < 0 {
		p.result.addError("El peso bruto del conocimiento de embarque %s debe ser mayor a cero", label)
	}
	if s.NetWeight < 0 {
		p.result.addError("El peso neto del conocimiento de embarque %s debe ser mayor a cero", label)
	}
	if s.Volume < 0 {
		p.result.addError("El volumen del conocimiento de embarque %s debe ser mayor a cero", label)
	}
	if s.GrossWeight > 0 && s.NetWeight > 0 && s.GrossWeight < s.NetWeight {
		p.result.addError("El peso bruto del conocimiento de embarque %s no puede ser menor al peso neto", label)
	}
}
