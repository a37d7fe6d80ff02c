package auth

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	TokenManager   contracts.TokenManager
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		TokenManager:   tokenManager,
		Log:            logger,
	}
}

// IdentifyCaller never touches the user store. A missing header is the only
// case answered with 401.
func (uc *authUsecase) IdentifyCaller(ctx context.Context, authorizationHeader string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if authorizationHeader == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	token, found := strings.CutPrefix(authorizationHeader, constvars.AppBearerTokenPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		uc.Log.Warn("authUsecase.IdentifyCaller malformed authorization header",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", exceptions.ErrTokenMalformed(nil)
	}

	email, err := uc.TokenManager.Verify(token)
	if err != nil {
		uc.Log.Warn("authUsecase.IdentifyCaller token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return utils.SanitizeEmail(email), nil
}

// Authorize allows email only when a user with that e-mail exists and holds
// requiredRole.
func (uc *authUsecase) Authorize(ctx context.Context, email string, requiredRole models.Role) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Authorize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingRoleKey, requiredRole.String()),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.Authorize error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return exceptions.ErrForbiddenUnknownCaller(nil)
	}
	if !user.HasRole(requiredRole) {
		return exceptions.ErrForbiddenRole(nil)
	}
	return nil
}
