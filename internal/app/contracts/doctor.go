package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error)
	DeleteDoctor(ctx context.Context, email string) (*responses.DeleteResult, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (string, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}
