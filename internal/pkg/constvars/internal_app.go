package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CALLER_EMAIL_KEY         ContextKey = "caller_email"
)

const (
	REQUEST_ID_PREFIX = "DRPORTAL_SVC_"
)

const (
	AppServiceName       = "doctors-portal-service"
	AppLivenessMessage   = "Running the doctors portal server"
	AppEnvProduction     = "production"
	AppEnvDevelopment    = "development"
	AppBearerTokenPrefix = "Bearer "
)

const (
	ProcessHTTP      = "http"
	ProcessNotifier  = "notifier"
	ProcessPortalctl = "portalctl"
)

const (
	QueryParamDate    = "date"
	QueryParamPatient = "patient"
	URLParamEmail     = "email"
)

// Allowed doctor portrait formats, matched against mime.ExtensionsByType output.
var ImageAllowedDoctorPortraitFormats = []string{".png", ".jpg", ".jpeg"}
