package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log              *zap.Logger
	TreatmentUsecase contracts.TreatmentUsecase
	InternalConfig   *config.InternalConfig
}

func NewCatalogController(logger *zap.Logger, treatmentUsecase contracts.TreatmentUsecase, internalConfig *config.InternalConfig) *CatalogController {
	return &CatalogController{
		Log:              logger,
		TreatmentUsecase: treatmentUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *CatalogController) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlain)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(constvars.AppLivenessMessage))
}

func (ctrl *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "CatalogController.ListServices")
	if !ok {
		return
	}
	ctrl.Log.Info("CatalogController.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.ListServices(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogController.ListServices error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, result)
}

func (ctrl *CatalogController) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "CatalogController.ListSpecializations")
	if !ok {
		return
	}
	ctrl.Log.Info("CatalogController.ListSpecializations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.ListSpecializations(ctx)
	if err != nil {
		ctrl.Log.Error("CatalogController.ListSpecializations error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecializationsSuccessMessage, result)
}

// GetAvailability answers for the date in the query string. An empty date
// matches no bookings, so every slot is reported free.
func (ctrl *CatalogController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "CatalogController.GetAvailability")
	if !ok {
		return
	}
	date := r.URL.Query().Get(constvars.QueryParamDate)
	ctrl.Log.Info("CatalogController.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.TreatmentUsecase.GetAvailability(ctx, date)
	if err != nil {
		ctrl.Log.Error("CatalogController.GetAvailability error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("CatalogController.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}
