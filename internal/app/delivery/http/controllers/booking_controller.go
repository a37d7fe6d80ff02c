package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

// CreateBooking answers 201 for a stored booking and 200 with the existing
// record when the patient already holds one for that treatment and date.
func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "BookingController.CreateBooking")
	if !ok {
		return
	}
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.AdmitBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	if !result.Accepted {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingAlreadyExistsMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingAdmittedMessage, result)
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, "BookingController.ListBookings")
	if !ok {
		return
	}
	patient := r.URL.Query().Get(constvars.QueryParamPatient)
	ctrl.Log.Info("BookingController.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	callerEmail, ok := r.Context().Value(constvars.CONTEXT_CALLER_EMAIL_KEY).(string)
	if !ok || callerEmail == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingCallerEmail(nil))
		return
	}

	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.ListBookingsByPatient(ctx, callerEmail, patient)
	if err != nil {
		ctrl.Log.Error("BookingController.ListBookings error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, result)
}
