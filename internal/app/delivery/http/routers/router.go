package routers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *controllers.CatalogController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
	bookingController *controllers.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.BodyLimit)

	attachRoutes := func(r chi.Router) {
		attachCatalogRoutes(r, catalogController)
		attachUserRoutes(r, middlewares, userController)
		attachDoctorRoutes(r, middlewares, doctorController)
		attachBookingRoutes(r, middlewares, bookingController)
	}

	prefix := strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if prefix == "" {
		attachRoutes(router)
		return
	}
	router.Route(fmt.Sprintf("/%s", prefix), attachRoutes)
}
