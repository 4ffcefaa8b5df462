// Package rules holds the static validation rule catalog: one immutable
// RuleSet per supported (country, operation) pair, plus the authorization
// role table and the fixed reference lists the validator consults. The
// catalog is built once at startup and injected into the validator so rule
// sets can be swapped in tests without touching validator logic.
package rules

import (
	"sort"

	"aduanagw/internal/domain"
)

// Field keys used in the required-field sets. The validator maps each key to
// an extractor; messages name the key verbatim.
const (
	FieldVoyageNumber        = "voyage_number"
	FieldOriginPort          = "origin_port_code"
	FieldDestinationPort     = "destination_port_code"
	FieldDepartureDate       = "departure_date"
	FieldVesselName          = "name"
	FieldVesselCode          = "code"
	FieldVesselFlag          = "flag_country"
	FieldBLNumber            = "bl_number"
	FieldShipperName         = "shipper_name"
	FieldShipperTaxID        = "shipper_tax_id"
	FieldConsigneeName       = "consignee_name"
	FieldConsigneeTaxID      = "consignee_tax_id"
	FieldCargoDescription    = "cargo_description"
	FieldContainerNumber     = "number"
	FieldContainerType       = "type"
)

// Attachment types referenced by the catalog and the stage-specific rules.
const (
	AttachmentBillOfLading = "conocimiento_embarque"
	AttachmentPackingList  = "lista_empaque"
	AttachmentTallySheet   = "planilla_tarja"
)

const maxAttachmentSizeBytes = 5 * 1024 * 1024

// Key identifies one supported (country, operation) pair.
type Key struct {
	Country   domain.Country
	Operation domain.Operation
}

// RuleSet is the immutable validation rule table for one (country, operation).
type RuleSet struct {
	RequiredVoyageFields        []string
	RequiredVesselFields        []string
	RequiredShipmentFields      []string
	RequiredContainerFields     []string
	RequiredAttachmentTypes     []string
	MaxBLNumberLength           int
	AllowPastDepartureDate      bool
	RequiresCaptainLicense      bool
	RequiresParaguayReference   bool
	RequiresPriorManifestSent   bool
	MaxRectifications           *int
	RequiresMasterBillOfLading  bool
	RequiresTransshipmentPort   bool
	ValidateFiscalIDCheckDigit  bool
	ValidateContainerCheckDigit bool
	MaxAttachmentSizeBytes      int64
	AllowedAttachmentExtensions []string
}

// Catalog resolves (country, operation) pairs to rule sets and required
// authorization roles.
type Catalog struct {
	sets  map[Key]RuleSet
	roles map[Key]string
}

func intPtr(n int) *int { return &n }

// NewCatalog builds the full static rule catalog.
func NewCatalog() *Catalog {
	fullVoyage := []string{FieldVoyageNumber, FieldOriginPort, FieldDestinationPort, FieldDepartureDate}
	fullVessel := []string{FieldVesselName, FieldVesselCode, FieldVesselFlag}
	baseShipment := []string{FieldBLNumber, FieldShipperName, FieldConsigneeName, FieldCargoDescription}
	fullShipment := append(append([]string{}, baseShipment...), FieldShipperTaxID, FieldConsigneeTaxID)
	fullContainer := []string{FieldContainerNumber, FieldContainerType}
	docExtensions := []string{"pdf", "jpg", "png"}
	pyExtensions := []string{"pdf", "jpg", "png", "xml"}

	sets := map[Key]RuleSet{
		// Argentina / AFIP
		{domain.CountryArgentina, domain.OperationAnticipada}: {
			RequiredVoyageFields:        fullVoyage,
			RequiredVesselFields:        fullVessel,
			RequiredShipmentFields:      baseShipment,
			RequiredContainerFields:     fullContainer,
			MaxBLNumberLength:           13,
			RequiresCaptainLicense:      true,
			ValidateFiscalIDCheckDigit:  true,
			ValidateContainerCheckDigit: true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: docExtensions,
		},
		{domain.CountryArgentina, domain.OperationMicDta}: {
			RequiredVoyageFields:        fullVoyage,
			RequiredVesselFields:        fullVessel,
			RequiredShipmentFields:      fullShipment,
			RequiredContainerFields:     fullContainer,
			MaxBLNumberLength:           13,
			ValidateFiscalIDCheckDigit:  true,
			ValidateContainerCheckDigit: true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: docExtensions,
		},
		{domain.CountryArgentina, domain.OperationDesconsolidado}: {
			RequiredVoyageFields:        []string{FieldVoyageNumber, FieldOriginPort, FieldDestinationPort},
			RequiredShipmentFields:      baseShipment,
			MaxBLNumberLength:           13,
			AllowPastDepartureDate:      true,
			RequiresMasterBillOfLading:  true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: docExtensions,
		},
		{domain.CountryArgentina, domain.OperationTransbordo}: {
			RequiredVoyageFields:        fullVoyage,
			RequiredVesselFields:        fullVessel,
			RequiredShipmentFields:      baseShipment,
			RequiredContainerFields:     fullContainer,
			MaxBLNumberLength:           13,
			RequiresTransshipmentPort:   true,
			ValidateContainerCheckDigit: true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: docExtensions,
		},

		// Paraguay / DNA-GDSF
		{domain.CountryParaguay, domain.OperationManifiesto}: {
			RequiredVoyageFields:        fullVoyage,
			RequiredVesselFields:        fullVessel,
			RequiredShipmentFields:      baseShipment,
			RequiredContainerFields:     fullContainer,
			MaxBLNumberLength:           20,
			ValidateFiscalIDCheckDigit:  true,
			ValidateContainerCheckDigit: true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: pyExtensions,
		},
		{domain.CountryParaguay, domain.OperationAdjuntos}: {
			RequiredVoyageFields:        []string{FieldVoyageNumber},
			RequiredShipmentFields:      []string{FieldBLNumber},
			RequiredAttachmentTypes:     []string{AttachmentBillOfLading},
			MaxBLNumberLength:           20,
			AllowPastDepartureDate:      true,
			RequiresParaguayReference:   true,
			RequiresPriorManifestSent:   true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: pyExtensions,
		},
		{domain.CountryParaguay, domain.OperationConsulta}: {
			RequiredVoyageFields:        []string{FieldVoyageNumber},
			MaxBLNumberLength:           20,
			AllowPastDepartureDate:      true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: pyExtensions,
		},
		{domain.CountryParaguay, domain.OperationRectificacion}: {
			RequiredVoyageFields:        fullVoyage,
			RequiredVesselFields:        fullVessel,
			RequiredShipmentFields:      baseShipment,
			MaxBLNumberLength:           20,
			AllowPastDepartureDate:      true,
			RequiresParaguayReference:   true,
			RequiresPriorManifestSent:   true,
			MaxRectifications:           intPtr(3),
			ValidateFiscalIDCheckDigit:  true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: pyExtensions,
		},
		{domain.CountryParaguay, domain.OperationCierre}: {
			RequiredVoyageFields:        []string{FieldVoyageNumber},
			MaxBLNumberLength:           20,
			AllowPastDepartureDate:      true,
			RequiresPriorManifestSent:   true,
			MaxAttachmentSizeBytes:      maxAttachmentSizeBytes,
			AllowedAttachmentExtensions: pyExtensions,
		},
	}

	roles := map[Key]string{
		{domain.CountryArgentina, domain.OperationAnticipada}:     "Cargas",
		{domain.CountryArgentina, domain.OperationMicDta}:         "Cargas",
		{domain.CountryArgentina, domain.OperationDesconsolidado}: "Desconsolidados",
		{domain.CountryArgentina, domain.OperationTransbordo}:     "Transbordos",
		{domain.CountryParaguay, domain.OperationManifiesto}:      "Manifiestos",
		{domain.CountryParaguay, domain.OperationAdjuntos}:        "Manifiestos",
		{domain.CountryParaguay, domain.OperationConsulta}:        "Consultas",
		{domain.CountryParaguay, domain.OperationRectificacion}:   "Manifiestos",
		{domain.CountryParaguay, domain.OperationCierre}:          "Manifiestos",
	}

	return &Catalog{sets: sets, roles: roles}
}

// Lookup resolves the rule set for a (country, operation) pair. The second
// return value is false for unsupported combinations; callers must treat that
// as a hard validation error, never a crash.
func (c *Catalog) Lookup(country domain.Country, operation domain.Operation) (RuleSet, bool) {
	rs, ok := c.sets[Key{country, operation}]
	return rs, ok
}

// RequiredRole returns the authorization role a company must hold for the
// given pair.
func (c *Catalog) RequiredRole(country domain.Country, operation domain.Operation) (string, bool) {
	role, ok := c.roles[Key{country, operation}]
	return role, ok
}

// SupportedKeys lists every advertised (country, operation) pair in a stable
// order.
func (c *Catalog) SupportedKeys() []Key {
	keys := make([]Key, 0, len(c.sets))
	for k := range c.sets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Country != keys[j].Country {
			return keys[i].Country < keys[j].Country
		}
		return keys[i].Operation < keys[j].Operation
	})
	return keys
}

// KnownPorts is the UN/LOCODE allow-list for origin/destination checks.
// Unknown codes produce warnings, not errors.
var KnownPorts = map[string]bool{
	// Argentina
	"ARBUE": true, "ARROS": true, "ARSFN": true, "ARZAE": true, "ARCMP": true,
	"ARSLO": true, "ARBQS": true,
	// Paraguay
	"PYASU": true, "PYVLL": true, "PYCON": true, "PYTER": true, "PYPIL": true,
	// Neighbouring river/ocean ports on the same trade
	"BRPNG": true, "BRRIG": true, "UYMVD": true, "UYNVP": true, "BOPBU": true,
}

// StandardContainerTypes is the fixed list of container type codes accepted
// without warning.
var StandardContainerTypes = map[string]bool{
	"20GP": true, "40GP": true, "40HC": true,
	"20OT": true, "40OT": true, "20RF": true, "40RF": true,
}

// RegionalFlags lists the flag countries that do not trigger the
// foreign-flag warning.
var RegionalFlags = map[string]bool{
	"AR": true, "PY": true, "BR": true, "UY": true, "BO": true,
}
