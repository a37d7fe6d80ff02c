package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	TokenManager   contracts.TokenManager
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		TokenManager:   tokenManager,
		Log:            logger,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.ListUsers error calling UserRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(users)),
	)
	return users, nil
}

// IsAdmin answers false for an unknown e-mail.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (*responses.IsAdmin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	email = utils.SanitizeEmail(email)
	uc.Log.Info("userUsecase.IsAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("userUsecase.IsAdmin error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.IsAdmin{Admin: user.HasRole(models.RoleAdmin)}, nil
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, email string) (*responses.UpdateResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	email = utils.SanitizeEmail(email)
	uc.Log.Info("userUsecase.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	result, err := uc.UserRepository.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		uc.Log.Error("userUsecase.PromoteToAdmin error calling UserRepository.SetRole",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	uc.Log.Info("userUsecase.PromoteToAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String(constvars.LoggingRoleKey, models.RoleAdmin.String()),
	)
	return result, nil
}

// UpsertUser saves the caller's profile under the path e-mail and hands back
// a token for it. A body e-mail, if any, is replaced by the path e-mail.
func (uc *userUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	email = utils.SanitizeEmail(email)
	uc.Log.Info("userUsecase.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	request.Email = email
	utils.SanitizeUpsertUserRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := uc.UserRepository.UpsertProfile(ctx, email, request)
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error calling UserRepository.UpsertProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.TokenManager.Sign(email)
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error calling TokenManager.Sign",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpsertUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return &responses.UpsertUser{Result: *result, Token: token}, nil
}
