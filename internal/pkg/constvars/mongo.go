package constvars

const (
	MongoCollectionUsers    = "users"
	MongoCollectionServices = "services"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionBookings = "bookings"
)

const (
	MongoIndexBookingTriple = "treatment_date_patient_unique"
	MongoIndexUserEmail     = "email_unique"
	MongoIndexDoctorEmail   = "doctor_email_unique"
)
