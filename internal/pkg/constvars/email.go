package constvars

const (
	EmailSendHTMLFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

const (
	EmailBookingConfirmedSubjectFormat = "Your Appointment for %s on %s at %s is Confirmed"
	EmailBookingConfirmedHTMLFormat    = `<div>
   <h3>Hello %s</h3>
   <h1>Your appointment for %s is confirmed</h1>
   <p>Looking forward to see you on %s at %s</p>
   <h3>Our Address</h3>
   <p>%s</p>
</div>`
)

const (
	MessageTypeBookingConfirmed = "booking.confirmed"
)
