package validator

import (
	"time"

	"aduanagw/internal/domain"
	"aduanagw/internal/validator/rules"
)

// extraRuleFunc is a hand-coded cross-field rule for one (country, operation)
// pair, run as stage 10.
type extraRuleFunc func(*pass)

// extraRules is the explicit dispatch table for operation-specific rules;
// pairs without an entry have no extra rules.
var extraRules = map[rules.Key]extraRuleFunc{
	{Country: domain.CountryParaguay, Operation: domain.OperationAdjuntos}:   paraguayAdjuntosRules,
	{Country: domain.CountryArgentina, Operation: domain.OperationAnticipada}: argentinaAnticipadaRules,
	{Country: domain.CountryArgentina, Operation: domain.OperationMicDta}:     argentinaMicDtaRules,
}

// paraguayAdjuntosRules: containerized cargo needs a packing list and
// break-bulk cargo needs a tally sheet among the uploads.
func paraguayAdjuntosRules(p *pass) {
	hasContainers := false
	hasBreakbulk := false
	for i := range p.voyage.Shipments {
		s := &p.voyage.Shipments[i]
		if containerCount(s) > 0 {
			hasContainers = true
		}
		if s.PackagingType == domain.PackagingBreakbulk {
			hasBreakbulk = true
		}
	}

	if hasContainers {
		if _, ok := p.opts.UploadedAttachments[rules.AttachmentPackingList]; !ok {
			p.result.addError("Falta el documento adjunto obligatorio: %s", rules.AttachmentPackingList)
		}
	}
	if hasBreakbulk {
		if _, ok := p.opts.UploadedAttachments[rules.AttachmentTallySheet]; !ok {
			p.result.addError("Falta el documento adjunto obligatorio: %s", rules.AttachmentTallySheet)
		}
	}
}

// argentinaAnticipadaRules: the anticipated-information operation needs an
// estimated arrival date and flags stale departures.
func argentinaAnticipadaRules(p *pass) {
	if p.voyage.EstimatedArrivalDate == nil {
		p.result.addError("La fecha estimada de arribo es obligatoria para la operación anticipada")
	}
	if p.voyage.DepartureDate != nil {
		age := p.now.Sub(p.voyage.DepartureDate.UTC())
		if age > staleDepartureDays*24*time.Hour {
			p.result.addWarning("La fecha de salida tiene una antigüedad mayor a %d días", staleDepartureDays)
		}
	}
}

// argentinaMicDtaRules: MIC/DTA demands both fiscal identifiers on every
// shipment and warns when the declared containers exceed vessel capacity.
func argentinaMicDtaRules(p *pass) {
	totalContainers := 0
	for i := range p.voyage.Shipments {
		s := &p.voyage.Shipments[i]
		label := shipmentLabel(s, i)
		if s.ShipperTaxID == "" {
			p.result.addError("El CUIT del embarcador es obligatorio en el conocimiento de embarque %s", label)
		}
		if s.ConsigneeTaxID == "" {
			p.result.addError("El CUIT del consignatario es obligatorio en el conocimiento de embarque %s", label)
		}
		totalContainers += containerCount(s)
	}

	vessel := p.voyage.Vessel
	if vessel != nil && vessel.ContainerCapacity > 0 && totalContainers > vessel.ContainerCapacity {
		p.result.addWarning("El total de contenedores declarados (%d) supera la capacidad del buque (%d)", totalContainers, vessel.ContainerCapacity)
	}
}
