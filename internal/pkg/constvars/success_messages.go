package constvars

const (
	ResponseUnknown = "unknown"

	GetServicesSuccessMessage        = "services fetched successfully"
	GetSpecializationsSuccessMessage = "specializations fetched successfully"
	GetAvailabilitySuccessMessage    = "availability computed successfully"

	GetUsersSuccessMessage     = "users fetched successfully"
	CheckAdminSuccessMessage   = "admin status checked successfully"
	PromoteAdminSuccessMessage = "user promoted to admin successfully"
	UpsertUserSuccessMessage   = "user saved successfully"

	GetDoctorsSuccessMessage   = "doctors fetched successfully"
	CreateDoctorSuccessMessage = "doctor created successfully"
	DeleteDoctorSuccessMessage = "doctor deleted successfully"

	GetBookingsSuccessMessage   = "bookings fetched successfully"
	BookingAdmittedMessage      = "booking created successfully"
	BookingAlreadyExistsMessage = "booking already exists for this treatment and date"
)
