package validator

import "aduanagw/internal/domain"

// checkAggregateLimits is stage 11: consistency and operational limits over
// the whole manifest.
func (p *pass) checkAggregateLimits() {
	p.result.recordCheck(checkAggregateLimits)

	shipments := p.voyage.Shipments

	var totalGross, totalNet, totalVolume float64
	for i := range shipments {
		s := &shipments[i]
		totalGross += s.GrossWeight
		totalNet += s.NetWeight
		totalVolume += s.Volume

		label := shipmentLabel(s, i)
		if containerCount(s) > containersPerShipmentWarn {
			p.result.addWarning("El envío %s declara %d contenedores; revise el detalle antes de enviar", label, containerCount(s))
		}
		if len(s.CargoDescription) > maxCargoDescriptionChars {
			p.result.addWarning("La descripción de la mercadería del envío %s supera los %d caracteres", label, maxCargoDescriptionChars)
		}
	}

	if totalGross < totalNet {
		p.result.addError("El peso bruto total no puede ser menor al peso neto total")
	}

	if totalVolume > 0 && totalGross > 0 {
		density := totalGross / totalVolume
		if density < minCargoDensity || density > maxCargoDensity {
			p.result.addWarning("La densidad de la mercadería (%.1f kg/m³) está fuera del rango esperado", density)
		}
	}

	limit := maxShipmentsArgentina
	if p.country == domain.CountryParaguay {
		limit = maxShipmentsParaguay
	}
	if len(shipments) > limit {
		p.result.addError("Se superó el límite de %d envíos por viaje para %s", limit, p.country)
	}

	if totalGross > totalWeightWarnKg {
		p.result.addWarning("El peso bruto total declarado (%.0f kg) supera los 50000 kg", totalGross)
	}
}

// containerCount returns the declared container count of a shipment,
// preferring individually modeled records over the aggregate counter.
func containerCount(s *domain.Shipment) int {
	if len(s.Containers) > 0 {
		return len(s.Containers)
	}
	return s.ContainersLoaded
}
