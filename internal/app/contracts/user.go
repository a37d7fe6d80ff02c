package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (*responses.IsAdmin, error)
	PromoteToAdmin(ctx context.Context, email string) (*responses.UpdateResult, error)
	UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email string, role models.Role) (*responses.UpdateResult, error)
	UpsertProfile(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpdateResult, error)
}
