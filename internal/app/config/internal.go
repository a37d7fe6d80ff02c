package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Mailer   AppMailer
	RabbitMQ AppRabbitMQ
	Booking  AppBooking
	Catalog  AppCatalog
	Minio    AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	ClinicAddress              string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	RequestTimeoutInSeconds    int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue      string
	ConsumerPrefetch int
}

type AppBooking struct {
	// ExclusiveSlots refuses a second patient on a (treatment, date, slot)
	// that is already taken. Off keeps one booking per patient per treatment
	// and day as the only rule.
	ExclusiveSlots            bool
	LockExpiryInSeconds       int
	RateLimitPerSecond        int
	RateLimitBurst            int
	NotificationTimeoutInSecs int
}

type AppCatalog struct {
	CacheTTLInSeconds int
}

type AppMinio struct {
	BucketName                      string
	PublicBaseUrl                   string
	DoctorPortraitMaxUploadSizeInMB int
}
