package validator

import (
	"regexp"

	"aduanagw/internal/domain"
	"aduanagw/internal/validator/checkdigit"
	"aduanagw/internal/validator/rules"
)

var containerNumberPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)

var containerFieldExtractors = map[string]func(*domain.Container) string{
	rules.FieldContainerNumber: func(c *domain.Container) string { return c.Number },
	rules.FieldContainerType:   func(c *domain.Container) string { return c.Type },
}

// checkContainers is stage 7. Skipped when the rule set requires no container
// fields. Shipments that only carry an aggregate container count cannot be
// validated at container level; that limitation surfaces as a warning.
func (p *pass) checkContainers() {
	if len(p.ruleSet.RequiredContainerFields) == 0 {
		return
	}
	p.result.recordCheck(checkContainers)

	for i := range p.voyage.Shipments {
		s := &p.voyage.Shipments[i]
		label := shipmentLabel(s, i)

		if s.ContainersLoaded > 0 && len(s.Containers) == 0 {
			p.result.addWarning("No es posible validar el detalle de los %d contenedores declarados en el envío %s", s.ContainersLoaded, label)
			continue
		}

		for j := range s.Containers {
			p.checkContainer(&s.Containers[j], label)
		}
	}
}

func (p *pass) checkContainer(c *domain.Container, shipment string) {
	for _, field := range p.ruleSet.RequiredContainerFields {
		extract, known := containerFieldExtractors[field]
		if !known {
			continue
		}
		if extract(c) == "" {
			p.result.addError("El contenedor del envío %s no tiene el campo obligatorio %s", shipment, field)
		}
	}

	if c.Number != "" {
		if !containerNumberPattern.MatchString(c.Number) {
			p.result.addError("El número de contenedor %q no respeta el formato AAAA9999999", c.Number)
		} else if p.ruleSet.ValidateContainerCheckDigit && !checkdigit.ValidateContainer(c.Number) {
			p.result.addError("El número de contenedor %s tiene un dígito verificador inválido", c.Number)
		}
	}

	if c.Type != "" && !rules.StandardContainerTypes[c.Type] {
		p.result.addWarning("El tipo de contenedor %s no es un código estándar", c.Type)
	}
}
