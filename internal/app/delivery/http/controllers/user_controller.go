package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "UserController.ListUsers")
	if !ok {
		return
	}
	ctrl.Log.Info("UserController.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		ctrl.Log.Error("UserController.ListUsers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, result)
}

func (ctrl *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "UserController.CheckAdmin")
	if !ok {
		return
	}
	email := chi.URLParam(r, constvars.URLParamEmail)
	ctrl.Log.Info("UserController.CheckAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamEmail))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.IsAdmin(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.CheckAdmin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckAdminSuccessMessage, result)
}

func (ctrl *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "UserController.PromoteToAdmin")
	if !ok {
		return
	}
	email := chi.URLParam(r, constvars.URLParamEmail)
	ctrl.Log.Info("UserController.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamEmail))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.PromoteToAdmin(ctx, email)
	if err != nil {
		ctrl.Log.Error("UserController.PromoteToAdmin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("UserController.PromoteToAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PromoteAdminSuccessMessage, result)
}

func (ctrl *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "UserController.UpsertUser")
	if !ok {
		return
	}
	email := chi.URLParam(r, constvars.URLParamEmail)
	ctrl.Log.Info("UserController.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	request := new(requests.UpsertUser)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpsertUser error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.UpsertUser(ctx, email, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpsertUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("UserController.UpsertUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertUserSuccessMessage, result)
}
