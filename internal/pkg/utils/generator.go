package utils

import (
	"doctors-portal-service/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	owner = strings.NewReplacer("@", "_at_", ".", "_").Replace(owner)
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}

// Key fields are query-escaped so a ':' inside an opaque date or treatment
// cannot make two different triples share a key.
func BookingLockKey(treatment, date, patient string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingLockFormat, url.QueryEscape(treatment), url.QueryEscape(date), url.QueryEscape(patient))
}

func BookingSlotLockKey(treatment, date, slot string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingSlotLockFormat, url.QueryEscape(treatment), url.QueryEscape(date), url.QueryEscape(slot))
}
