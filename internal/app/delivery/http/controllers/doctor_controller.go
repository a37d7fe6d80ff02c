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

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "DoctorController.ListDoctors")
	if !ok {
		return
	}
	ctrl.Log.Info("DoctorController.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		ctrl.Log.Error("DoctorController.ListDoctors error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, result)
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "DoctorController.CreateDoctor")
	if !ok {
		return
	}
	ctrl.Log.Info("DoctorController.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateDoctor)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.CreateDoctor error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.DoctorUsecase.CreateDoctor(ctx, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.CreateDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("DoctorController.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "DoctorController.DeleteDoctor")
	if !ok {
		return
	}
	email := chi.URLParam(r, constvars.URLParamEmail)
	ctrl.Log.Info("DoctorController.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingURLParam(nil, constvars.URLParamEmail))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.DoctorUsecase.DeleteDoctor(ctx, email)
	if err != nil {
		ctrl.Log.Error("DoctorController.DeleteDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, result)
}
