package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authenticate).Get("/users", userController.ListUsers)
	router.Get("/admin/{email}", userController.CheckAdmin)
	router.With(middlewares.Authenticate, middlewares.RequireRole(models.RoleAdmin)).Put("/user/admin/{email}", userController.PromoteToAdmin)
	router.Put("/user/{email}", userController.UpsertUser)
}
