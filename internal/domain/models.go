package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Company is a shipping agency registered with the gateway.
type Company struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	TaxID              string    `db:"tax_id" json:"tax_id"`
	IsActive           bool      `db:"is_active" json:"is_active"`
	WebserviceEnabled  bool      `db:"webservice_enabled" json:"webservice_enabled"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`

	// Roles holds the customs authorization roles granted to the company
	// (e.g. "Cargas", "Manifiestos"). Loaded from company_roles.
	Roles []string `db:"-" json:"roles"`
}

// HasRole reports whether the company holds the given authorization role.
func (c *Company) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an operator account within a company.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Vessel is a registered vessel with its master data.
type Vessel struct {
	ID                uuid.UUID `db:"id" json:"id"`
	CompanyID         uuid.UUID `db:"company_id" json:"company_id"`
	Name              string    `db:"name" json:"name"`
	Code              string    `db:"code" json:"code"`
	FlagCountry       string    `db:"flag_country" json:"flag_country"`
	CaptainName       string    `db:"captain_name" json:"captain_name"`
	CaptainLicense    string    `db:"captain_license" json:"captain_license"`
	ContainerCapacity int       `db:"container_capacity" json:"container_capacity"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Voyage is a maritime voyage with its cargo manifest data.
type Voyage struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	CompanyID             uuid.UUID  `db:"company_id" json:"company_id"`
	VoyageNumber          string     `db:"voyage_number" json:"voyage_number"`
	VesselID              *uuid.UUID `db:"vessel_id" json:"vessel_id,omitempty"`
	OriginPortCode        string     `db:"origin_port_code" json:"origin_port_code"`
	DestinationPortCode   string     `db:"destination_port_code" json:"destination_port_code"`
	TransshipmentPortCode string     `db:"transshipment_port_code" json:"transshipment_port_code"`
	DepartureDate         *time.Time `db:"departure_date" json:"departure_date,omitempty"`
	EstimatedArrivalDate  *time.Time `db:"estimated_arrival_date" json:"estimated_arrival_date,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`

	// Hydrated relations; not persisted on the voyages row itself.
	Vessel    *Vessel    `db:"-" json:"vessel,omitempty"`
	Shipments []Shipment `db:"-" json:"shipments,omitempty"`
}

// Shipment is a bill of lading within a voyage.
type Shipment struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	VoyageID         uuid.UUID     `db:"voyage_id" json:"voyage_id"`
	BLNumber         string        `db:"bl_number" json:"bl_number"`
	MasterBLNumber   string        `db:"master_bl_number" json:"master_bl_number"`
	ShipperName      string        `db:"shipper_name" json:"shipper_name"`
	ShipperTaxID     string        `db:"shipper_tax_id" json:"shipper_tax_id"`
	ConsigneeName    string        `db:"consignee_name" json:"consignee_name"`
	ConsigneeTaxID   string        `db:"consignee_tax_id" json:"consignee_tax_id"`
	CargoDescription string        `db:"cargo_description" json:"cargo_description"`
	PackagingType    PackagingType `db:"packaging_type" json:"packaging_type"`
	GrossWeight      float64       `db:"gross_weight" json:"gross_weight"`
	NetWeight        float64       `db:"net_weight" json:"net_weight"`
	Volume           float64       `db:"volume" json:"volume"`
	ContainersLoaded int           `db:"containers_loaded" json:"containers_loaded"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`

	// Containers holds individually modeled container records when loaded.
	// Most call sites only carry the aggregate ContainersLoaded count.
	Containers []Container `db:"-" json:"containers,omitempty"`
}

// Container is an individually modeled container within a shipment.
type Container struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ShipmentID uuid.UUID `db:"shipment_id" json:"shipment_id"`
	Number     string    `db:"number" json:"number"`
	Type       string    `db:"type" json:"type"`
	SealNumber string    `db:"seal_number" json:"seal_number"`
	TareWeight float64   `db:"tare_weight" json:"tare_weight"`
}

// Attachment is metadata for a stored supporting document of a voyage.
type Attachment struct {
	ID             uuid.UUID `db:"id" json:"id"`
	VoyageID       uuid.UUID `db:"voyage_id" json:"voyage_id"`
	AttachmentType string    `db:"attachment_type" json:"attachment_type"`
	FileName       string    `db:"file_name" json:"file_name"`
	Extension      string    `db:"extension" json:"extension"`
	SizeBytes      int64     `db:"size_bytes" json:"size_bytes"`
	StorageKey     string    `db:"storage_key" json:"storage_key"`
	UploadedBy     uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Certificate is the stored metadata of a company's digital certificate for
// one customs authority. Key material lives elsewhere; only validity metadata
// is tracked here.
type Certificate struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CompanyID  uuid.UUID `db:"company_id" json:"company_id"`
	Country    Country   `db:"country" json:"country"`
	Subject    string    `db:"subject" json:"subject"`
	Thumbprint string    `db:"thumbprint" json:"thumbprint"`
	NotBefore  time.Time `db:"not_before" json:"not_before"`
	NotAfter   time.Time `db:"not_after" json:"not_after"`
	Revoked    bool      `db:"revoked" json:"revoked"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// SubmissionTransaction is one submission attempt of a voyage to a customs
// webservice operation. Immutable once terminal.
type SubmissionTransaction struct {
	ID                uuid.UUID         `db:"id" json:"id"`
	VoyageID          uuid.UUID         `db:"voyage_id" json:"voyage_id"`
	CompanyID         uuid.UUID         `db:"company_id" json:"company_id"`
	Operation         Operation         `db:"operation" json:"operation"`
	Country           Country           `db:"country" json:"country"`
	Status            TransactionStatus `db:"status" json:"status"`
	ExternalReference *string           `db:"external_reference" json:"external_reference,omitempty"`
	ErrorCode         *string           `db:"error_code" json:"error_code,omitempty"`
	IsRectification   bool              `db:"is_rectification" json:"is_rectification"`
	Metadata          json.RawMessage   `db:"metadata" json:"metadata,omitempty"`
	CreatedBy         uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}
