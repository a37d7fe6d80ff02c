package config

import (
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctors_portal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "localhost"),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":5000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Dhaka"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			ClinicAddress:              utils.GetEnvString("APP_CLINIC_ADDRESS", "Andor Killa, Bandorban, Bangladesh"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@doctors-portal.local"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue:      utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "doctors_portal_mailer"),
			ConsumerPrefetch: utils.GetEnvInt("APP_RABBITMQ_CONSUMER_PREFETCH", 10),
		},
		Booking: AppBooking{
			ExclusiveSlots:            utils.GetEnvBool("APP_BOOKING_EXCLUSIVE_SLOTS", false),
			LockExpiryInSeconds:       utils.GetEnvInt("APP_BOOKING_LOCK_EXPIRY_IN_SECONDS", 10),
			RateLimitPerSecond:        utils.GetEnvInt("APP_BOOKING_RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:            utils.GetEnvInt("APP_BOOKING_RATE_LIMIT_BURST", 10),
			NotificationTimeoutInSecs: utils.GetEnvInt("APP_BOOKING_NOTIFICATION_TIMEOUT_IN_SECONDS", 5),
		},
		Catalog: AppCatalog{
			CacheTTLInSeconds: utils.GetEnvInt("APP_CATALOG_CACHE_TTL_IN_SECONDS", 300),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("APP_MINIO_BUCKET_NAME", "doctors"),
			PublicBaseUrl:                   utils.GetEnvString("APP_MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
			DoctorPortraitMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_DOCTOR_PORTRAIT_MAX_UPLOAD_SIZE_IN_MB", 2),
		},
	}
}
