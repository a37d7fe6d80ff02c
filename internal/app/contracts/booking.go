package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"errors"
)

// ErrDuplicateBooking is returned by BookingRepository.Insert when the store
// already holds a booking for the same treatment, date and patient.
var ErrDuplicateBooking = errors.New("booking already exists")

type BookingUsecase interface {
	AdmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.AdmitBooking, error)
	ListBookingsByPatient(ctx context.Context, callerEmail, patient string) ([]models.Booking, error)
}

type BookingRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// The two finders below return (nil, nil) when nothing matches.
	FindByTreatmentDatePatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindByTreatmentDateSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}
