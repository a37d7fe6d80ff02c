package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.Liveness)
	router.Get("/services", catalogController.ListServices)
	router.Get("/specializations", catalogController.ListSpecializations)
	router.Get("/available", catalogController.GetAvailability)
}
