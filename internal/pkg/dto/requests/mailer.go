package requests

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLCode string   `json:"html_code"`
}

// BookingConfirmedMessage is what the api publishes to the mailer queue once
// a booking is stored. The notifier renders it into an EmailPayload.
type BookingConfirmedMessage struct {
	Type        string `json:"type"`
	BookingID   string `json:"booking_id"`
	Patient     string `json:"patient"`
	PatientName string `json:"patient_name"`
	Treatment   string `json:"treatment"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	RequestID   string `json:"request_id,omitempty"`
}
