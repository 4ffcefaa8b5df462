package domain

// Country identifies a customs authority this gateway can submit to.
type Country string

const (
	CountryArgentina Country = "AR"
	CountryParaguay  Country = "PY"
)

// Authority returns the display name of the customs authority for the
// country, for use in operator-facing messages.
func (c Country) Authority() string {
	switch c {
	case CountryArgentina:
		return "AFIP"
	case CountryParaguay:
		return "DNA"
	default:
		return string(c)
	}
}

// Operation is a customs webservice operation type.
type Operation string

// Argentina (AFIP) operations.
const (
	OperationAnticipada     Operation = "anticipada"
	OperationMicDta         Operation = "micdta"
	OperationDesconsolidado Operation = "desconsolidado"
	OperationTransbordo     Operation = "transbordo"
)

// Paraguay (DNA-GDSF) operations.
const (
	OperationManifiesto    Operation = "manifiesto"
	OperationAdjuntos      Operation = "adjuntos"
	OperationConsulta      Operation = "consulta"
	OperationRectificacion Operation = "rectificacion"
	OperationCierre        Operation = "cierre"
)

// TransactionStatus is the lifecycle state of a submission transaction.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSending TransactionStatus = "sending"
	StatusSuccess TransactionStatus = "success"
	StatusError   TransactionStatus = "error"
	StatusRetry   TransactionStatus = "retry"
)

// ErrorCategory buckets validation messages for grouped display.
type ErrorCategory string

const (
	CategorySystem       ErrorCategory = "system"
	CategoryCertificates ErrorCategory = "certificates"
	CategoryVessel       ErrorCategory = "vessel"
	CategoryBillOfLading ErrorCategory = "bill_of_lading"
	CategoryContainers   ErrorCategory = "containers"
	CategoryAttachments  ErrorCategory = "attachments"
	CategoryVoyage       ErrorCategory = "voyage"
	CategoryFlow         ErrorCategory = "flow"
	CategoryOther        ErrorCategory = "other"
)

// UserRole defines the role hierarchy within a company.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

// ValidUserRoles is the set of assignable user roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleOperator: true,
}

// FileType represents the allowed attachment file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
	FileTypeXML FileType = "xml"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
	FileTypeXML: "text/xml",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"xml":  FileTypeXML,
}

// PackagingType describes how a shipment's cargo is packed.
type PackagingType string

const (
	PackagingContainer PackagingType = "container"
	PackagingBreakbulk PackagingType = "breakbulk"
	PackagingBulk      PackagingType = "bulk"
)
