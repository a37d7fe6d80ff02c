package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingEmailKey          = "email"
	LoggingRoleKey           = "role"
	LoggingDateKey           = "date"
	LoggingTreatmentKey      = "treatment"
	LoggingSlotKey           = "slot"
	LoggingPatientKey        = "patient"
	LoggingBookingIDKey      = "booking_id"
	LoggingAcceptedKey       = "accepted"
	LoggingResponseLengthKey = "response_length"
	LoggingRedisKey          = "redis_key"
	LoggingQueueKey          = "queue"
	LoggingRoutingKey        = "routing_key"
	LoggingBucketKey         = "bucket"
	LoggingObjectNameKey     = "object_name"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingCacheHitKey       = "cache_hit"
)
