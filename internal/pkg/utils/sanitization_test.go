package utils

import (
	"doctors-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateBookingRequest(t *testing.T) {
	t.Run("Patient Email Sanitization", func(t *testing.T) {
		request := &requests.CreateBooking{
			Patient: "  A@X.COM  ",
		}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "a@x.com", request.Patient, "patient should be lowercase and trimmed")
	})

	t.Run("Fields Trimmed But Case Kept", func(t *testing.T) {
		request := &requests.CreateBooking{
			Patient:     "a@x.com",
			PatientName: "  Jane Doe ",
			Treatment:   " Teeth Orthodontics ",
			Date:        " Jan 5, 2024",
			Slot:        "08:00 AM - 08:30 AM  ",
		}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "Jane Doe", request.PatientName)
		assert.Equal(t, "Teeth Orthodontics", request.Treatment, "treatment is matched by name so case must survive")
		assert.Equal(t, "Jan 5, 2024", request.Date)
		assert.Equal(t, "08:00 AM - 08:30 AM", request.Slot)
	})
}

func TestSanitizeUpsertUserRequest(t *testing.T) {
	request := &requests.UpsertUser{Email: " USER@DOMAIN.ORG", Name: " User "}

	SanitizeUpsertUserRequest(request)

	assert.Equal(t, "user@domain.org", request.Email)
	assert.Equal(t, "User", request.Name)
}

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	request := &requests.CreateDoctor{
		Name:      " Dr. Who ",
		Email:     " WHO@Clinic.com ",
		Specialty: " Cavity Protection ",
	}

	SanitizeCreateDoctorRequest(request)

	assert.Equal(t, "Dr. Who", request.Name)
	assert.Equal(t, "who@clinic.com", request.Email)
	assert.Equal(t, "Cavity Protection", request.Specialty)
}
