package constvars

// Validation messages for requests, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"dive":     "is invalid",
}

// Tags whose message carries the validation parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "Unauthorized access"
	ErrClientForbiddenAccess               = "Forbidden access"
	ErrClientUserNotFound                  = "user not found"
	ErrClientBookingInProgress             = "another booking for the same appointment is being processed, please retry"
	ErrClientUnknownTreatment              = "the requested treatment does not exist"
	ErrClientUnknownSlot                   = "the requested slot is not offered for this treatment"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientDoctorAlreadyExists           = "doctor with this email already exists"
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevValidationFailed          = "validation failed"
	ErrDevImageValidationFailed     = "image validation failed"
	ErrDevMissingQueryParam         = "missing required query parameter %s"
	ErrDevMissingURLParam           = "missing required url parameter %s"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevMissingCallerEmail        = "caller email missing from context"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevDoctorAlreadyExists       = "doctor already exists"
	ErrDevUnknownTreatment          = "treatment %s not found in catalog"
	ErrDevUnknownSlot               = "slot %s not offered by treatment %s"
	ErrDevBookingLockNotAcquired    = "booking admission lock held by another request"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevRecoveredPanic            = "recovered from panic"
	ErrDevMinioFailedToCreateObject = "failed to create object in minio bucket %s"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "authorization header missing"
	ErrDevAuthTokenMalformed        = "authorization header malformed"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissingEmail     = "token has no email claim"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleDoesntMatch       = "caller role does not match the required role"
	ErrDevAuthCallerUnknown         = "caller has no user record"
	ErrDevAuthPatientMismatch       = "requested patient differs from token email"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email through smtp host %s"
)
