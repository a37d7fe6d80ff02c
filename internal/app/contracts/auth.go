package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

type AuthUsecase interface {
	// IdentifyCaller verifies a raw Authorization header and returns the
	// email claim of its token.
	IdentifyCaller(ctx context.Context, authorizationHeader string) (string, error)
	Authorize(ctx context.Context, email string, requiredRole models.Role) error
}
