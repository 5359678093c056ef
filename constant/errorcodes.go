package constant

// Generator service error codes
const (
	// Generator service - Validation errors (0xx)
	ErrCodeEmptyInput = "QRG001"
	ErrCodeInvalidURL = "QRG002"

	// Generator service - Generation errors (1xx)
	ErrCodeEncode  = "QRG101"
	ErrCodeSave    = "QRG102"
	ErrCodePreview = "QRG103"

	// Generator service - Preview lookup errors (2xx)
	ErrCodePreviewNotFound = "QRG201"
)

// Storage error codes
const (
	ErrCodeStorageMkdir = "FS001"
	ErrCodeStorageWrite = "FS002"
	ErrCodeStorageRead  = "FS003"
	ErrCodeStorageStat  = "FS004"
)

// Window and application error codes
const (
	ErrCodeWindowForm      = "WIN001"
	ErrCodeWindowRender    = "WIN002"
	ErrCodeWindowGenerate  = "WIN003"
	ErrCodeWindowPreview   = "WIN004"
	ErrCodeWindowOrigin    = "WIN005"
	ErrCodeAppConfig       = "APP001"
	ErrCodeAppOutputDir    = "APP002"
	ErrCodeAppServerStart  = "APP003"
	ErrCodeAppServerStop   = "APP004"
	ErrCodeAppGenerateOnce = "APP005"
)

// Error types for categorization
const (
	ErrTypeValidation = "validation"
	ErrTypeGeneration = "generation"
	ErrTypeRetrieval  = "retrieval"
	ErrTypeStorage    = "storage"
	ErrTypeWindow     = "window"
	ErrTypeApp        = "application"
)
