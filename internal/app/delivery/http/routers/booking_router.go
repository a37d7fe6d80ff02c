package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	bookingLimiter := middlewares.BookingRateLimiter()
	router.With(middlewares.Authenticate).Get("/booking", bookingController.ListBookings)
	router.With(bookingLimiter.Limit).Post("/booking", bookingController.CreateBooking)
}
