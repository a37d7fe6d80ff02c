package responses

import "doctors-portal-service/internal/app/models"

// AdmitBooking reports the outcome of an admission. A refused admission is a
// normal result and carries the booking that blocked it.
type AdmitBooking struct {
	Accepted bool            `json:"accepted"`
	Existing *models.Booking `json:"existing,omitempty"`
	Stored   *models.Booking `json:"stored,omitempty"`
}
