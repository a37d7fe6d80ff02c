package requests

type CreateBooking struct {
	Patient     string `json:"patient" validate:"required,email"`
	PatientName string `json:"patientName" validate:"required"`
	Treatment   string `json:"treatment" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Slot        string `json:"slot" validate:"required"`
}
