package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireRole(models.RoleAdmin))
		r.Get("/doctors", doctorController.ListDoctors)
		r.Post("/doctor", doctorController.CreateDoctor)
		r.Delete("/doctor/{email}", doctorController.DeleteDoctor)
	})
}
