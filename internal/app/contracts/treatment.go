package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type TreatmentUsecase interface {
	ListServices(ctx context.Context) (*responses.ServiceList, error)
	ListSpecializations(ctx context.Context) ([]responses.Specialization, error)
	GetAvailability(ctx context.Context, date string) ([]responses.ServiceWithAvailability, error)
	// FindServiceByName reads through the catalog cache.
	FindServiceByName(ctx context.Context, name string) (*models.Service, error)
}

type TreatmentRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	ReplaceAll(ctx context.Context, services []models.Service) (int, error)
}
