package middlewares

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
