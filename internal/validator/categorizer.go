package validator

import (
	"strings"

	"aduanagw/internal/domain"
)

// categoryKeywords drives error grouping: the message is matched against each
// entry in order and the first category with a keyword hit wins. Keywords are
// matched case-insensitively against the Spanish validation messages.
var categoryKeywords = []struct {
	category domain.ErrorCategory
	keywords []string
}{
	{domain.CategoryCertificates, []string{"certificado"}},
	{domain.CategoryBillOfLading, []string{
		"conocimiento de embarque", "embarcador", "consignatario",
		"cuit", "ruc", "mercader", "peso", "volumen",
	}},
	{domain.CategoryContainers, []string{"contenedor"}},
	{domain.CategoryVessel, []string{"buque", "capit", "bandera", "licencia"}},
	{domain.CategoryAttachments, []string{"adjunto", "documento "}},
	{domain.CategoryVoyage, []string{"viaje", "fecha", "puerto", "salida", "arribo"}},
	{domain.CategorySystem, []string{
		"empresa", "usuario", "sistema", "interno", "combinaci", "webservice",
	}},
	{domain.CategoryFlow, []string{
		"manifiesto", "operaci", "proceso", "transacci", "reintento",
		"rectificaci", "intento",
	}},
}

// Categorize maps a single validation message to its display category.
func Categorize(message string) domain.ErrorCategory {
	lower := strings.ToLower(message)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}
