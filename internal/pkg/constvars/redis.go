package constvars

const (
	RedisKeyCatalogServices       = "catalog:services"
	RedisKeyBookingLockFormat     = "booking:lock:%s:%s:%s"
	RedisKeyBookingSlotLockFormat = "booking:slot-lock:%s:%s:%s"
)
