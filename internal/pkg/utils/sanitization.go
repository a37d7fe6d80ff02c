package utils

import (
	"doctors-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.Patient = SanitizeEmail(input.Patient)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Treatment = strings.TrimSpace(input.Treatment)
	input.Date = strings.TrimSpace(input.Date)
	input.Slot = strings.TrimSpace(input.Slot)
}

func SanitizeUpsertUserRequest(input *requests.UpsertUser) {
	input.Email = SanitizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Email = SanitizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Img = strings.TrimSpace(input.Img)
}
