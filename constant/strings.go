package constant

// HTTP header names
const (
	HeaderRequestID    = "X-Request-ID"
	HeaderContentType  = "Content-Type"
	HeaderOrigin       = "Origin"
	HeaderSecFetchSite = "Sec-Fetch-Site"
)

// Content types
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypePNG  = "image/png"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain   = "domain"
	CtxGenerate = "Generate"
	CtxPreview  = "Preview"

	// Infrastructure context names
	CtxEncoder  = "Encoder"
	CtxStorage  = "Storage"
	CtxRenderer = "Renderer"
	CtxAPI      = "api"

	// General context names
	CtxRouter         = "Router"
	CtxMain           = "Main"
	CtxShowWindow     = "ShowWindow"
	CtxGenerateClick  = "GenerateClick"
	CtxServePreview   = "ServePreview"
	CtxSameOrigin     = "SameOrigin"
	CtxGenerateOnce   = "GenerateOnce"
	CtxEnsureOutput   = "EnsureOutputDirectory"
	CtxGracefulServer = "Server"
)

// Data field keys
const (
	// Service data fields
	DataService     = "service"
	DataRawInput    = "raw_input"
	DataURL         = "url"
	DataDomain      = "domain"
	DataFilePath    = "file_path"
	DataOverwritten = "overwritten"
	DataCacheHit    = "cache_hit"

	// Infrastructure data fields
	DataDir         = "dir"
	DataBytes       = "bytes"
	DataModuleSize  = "module_size"
	DataPreviewSize = "preview_size"
	DataElapsed     = "elapsed"

	// API data fields
	DataMethod      = "method"
	DataPath        = "path"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataHost        = "host"
	DataOrigin      = "origin"
	DataAddr        = "addr"
	DataOutputDir   = "output_dir"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrEmptyInput       = "input is empty"
	ErrInvalidURL       = "url is not a valid http(s) url with a correct domain"
	ErrGeneration       = "failed to generate qr code"
	ErrPreviewNotFound  = "no qr code saved for domain"
	ErrEmptyContent     = "qr content is empty"
	ErrInvalidFileName  = "invalid artifact file name"
	ErrInvalidImageSize = "image size must be positive"
)

// User-facing notifications shown by the window
const (
	TitleInputError      = "Input Error"
	MsgInputError        = "Please enter a URL."
	TitleInvalidURL      = "Invalid URL"
	MsgInvalidURL        = "Please enter a valid URL with a correct domain."
	TitleGenerationError = "Error"
	MsgGenerationError   = "Failed to generate QR Code.\n%s"
	TitleSuccess         = "Success"
	MsgSuccess           = "QR Code generated successfully!\nSaved / Overwritten by domain:\n%s"
	StatusLinePrefix     = "Preview URL:\n"
	PreviewPlaceholder   = "(QR Preview will appear here)"
	WindowTitle          = "QR Code Generator"
)

// Form fields
const (
	FormFieldURL = "url"
)

// Routes
const (
	RouteWindow      = "/"
	RouteGenerate    = "/generate"
	RoutePreview     = "/preview/{domain}"
	RoutePreviewBase = "/preview/"
	RouteHealthcheck = "/health"
	URLParamDomain   = "domain"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
	LogLevelInfo       = "INFO"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgFailedToLoadConfig  = "Failed to load configuration"
	MsgFailedToEnsureDir   = "Failed to create output directory"
	MsgServerStarting      = "Window server starting"
	MsgServerFailedToStart = "Window server failed to start"
	MsgServerShuttingDown  = "Window server shutting down"
	MsgServerShutdownError = "Error during window server shutdown"
	MsgServerStopped       = "Window server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgSettingUpRoutes     = "Setting up window routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"
	MsgForbiddenOrigin     = "Rejected request from another origin"
)

// Cache namespaces
const (
	PreviewNamespace = "PREVIEW"
)

// Artifact naming
const (
	SchemeHTTP        = "http"
	SchemeHTTPS       = "https"
	PrefixHTTP        = "http://"
	PrefixHTTPS       = "https://"
	PrefixWWW         = "www."
	ArtifactExt       = ".png"
	DomainSeparator   = "."
	FilenameSeparator = "_"
)
