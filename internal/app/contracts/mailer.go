package contracts

import (
	"context"
	"doctors-portal-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

// BookingNotifier hands a stored booking over to the notification pipeline.
// Callers treat a failure as log-only: the booking is already stored.
type BookingNotifier interface {
	EnqueueBookingConfirmation(ctx context.Context, message *requests.BookingConfirmedMessage) error
}
