package bookings

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	TreatmentUsecase  contracts.TreatmentUsecase
	LockerService     contracts.LockerService
	BookingNotifier   contracts.BookingNotifier
	Dispatcher        *NotificationDispatcher
	Config            config.AppBooking
	Log               *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	treatmentUsecase contracts.TreatmentUsecase,
	lockerService contracts.LockerService,
	bookingNotifier contracts.BookingNotifier,
	dispatcher *NotificationDispatcher,
	bookingConfig config.AppBooking,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		TreatmentUsecase:  treatmentUsecase,
		LockerService:     lockerService,
		BookingNotifier:   bookingNotifier,
		Dispatcher:        dispatcher,
		Config:            bookingConfig,
		Log:               logger,
	}
}

// AdmitBooking stores the candidate unless the patient already holds a booking
// for the same treatment on the same date. A refusal is a normal result, not
// an error. With exclusive slots enabled a slot taken by anyone is refused too.
func (uc *bookingUsecase) AdmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.AdmitBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.AdmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingSlotKey, request.Slot),
		zap.String(constvars.LoggingPatientKey, request.Patient),
	)

	utils.SanitizeCreateBookingRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	service, err := uc.TreatmentUsecase.FindServiceByName(ctx, request.Treatment)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrUnknownTreatment(nil, request.Treatment)
	}
	if !service.OffersSlot(request.Slot) {
		return nil, exceptions.ErrUnknownSlot(nil, request.Treatment, request.Slot)
	}

	release, err := uc.acquireLocks(ctx, request)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.BookingRepository.FindByTreatmentDatePatient(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		uc.Log.Error("bookingUsecase.AdmitBooking error calling BookingRepository.FindByTreatmentDatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return uc.refuse(ctx, existing), nil
	}

	if uc.Config.ExclusiveSlots {
		taken, err := uc.BookingRepository.FindByTreatmentDateSlot(ctx, request.Treatment, request.Date, request.Slot)
		if err != nil {
			uc.Log.Error("bookingUsecase.AdmitBooking error calling BookingRepository.FindByTreatmentDateSlot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if taken != nil {
			return uc.refuse(ctx, taken), nil
		}
	}

	candidate := &models.Booking{
		Patient:     request.Patient,
		PatientName: request.PatientName,
		Treatment:   request.Treatment,
		Date:        request.Date,
		Slot:        request.Slot,
		CreatedAt:   time.Now(),
	}

	stored, err := uc.BookingRepository.Insert(ctx, candidate)
	if errors.Is(err, contracts.ErrDuplicateBooking) {
		existing, findErr := uc.BookingRepository.FindByTreatmentDatePatient(ctx, request.Treatment, request.Date, request.Patient)
		if findErr != nil {
			return nil, findErr
		}
		if existing == nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		return uc.refuse(ctx, existing), nil
	}
	if err != nil {
		uc.Log.Error("bookingUsecase.AdmitBooking error calling BookingRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notify(ctx, stored)

	uc.Log.Info("bookingUsecase.AdmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, stored.ID.Hex()),
		zap.Bool(constvars.LoggingAcceptedKey, true),
	)
	return &responses.AdmitBooking{Accepted: true, Stored: stored}, nil
}

func (uc *bookingUsecase) ListBookingsByPatient(ctx context.Context, callerEmail, patient string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBookingsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, patient),
	)

	patient = utils.SanitizeEmail(patient)
	if patient == "" {
		return nil, exceptions.ErrMissingQueryParam(nil, constvars.QueryParamPatient)
	}
	if patient != utils.SanitizeEmail(callerEmail) {
		return nil, exceptions.ErrForbiddenPatientMismatch(nil)
	}

	bookings, err := uc.BookingRepository.FindByPatient(ctx, patient)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookingsByPatient error calling BookingRepository.FindByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return bookings, nil
}

// acquireLocks serialises admissions of the same key across replicas. When
// redis itself fails the unique index is left as the only guard.
func (uc *bookingUsecase) acquireLocks(ctx context.Context, request *requests.CreateBooking) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	expiration := time.Duration(uc.Config.LockExpiryInSeconds) * time.Second

	keys := []string{utils.BookingLockKey(request.Treatment, request.Date, request.Patient)}
	if uc.Config.ExclusiveSlots {
		keys = append(keys, utils.BookingSlotLockKey(request.Treatment, request.Date, request.Slot))
	}

	held := make(map[string]string, len(keys))
	unlockCtx := context.WithoutCancel(ctx)
	release := func() {
		for key, lockValue := range held {
			err := uc.LockerService.Unlock(unlockCtx, key, lockValue)
			if err != nil {
				uc.Log.Warn("bookingUsecase.acquireLocks error releasing lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, key),
					zap.Error(err),
				)
			}
		}
	}

	for _, key := range keys {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, expiration)
		if err != nil {
			uc.Log.Warn("bookingUsecase.acquireLocks lock service unavailable, relying on unique index",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
			continue
		}
		if !acquired {
			release()
			return nil, exceptions.ErrBookingInProgress(nil)
		}
		held[key] = lockValue
	}
	return release, nil
}

func (uc *bookingUsecase) refuse(ctx context.Context, existing *models.Booking) *responses.AdmitBooking {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.AdmitBooking refused",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, existing.ID.Hex()),
		zap.Bool(constvars.LoggingAcceptedKey, false),
	)
	return &responses.AdmitBooking{Accepted: false, Existing: existing}
}

// notify submits the confirmation without waiting for it. The booking is
// already stored so a failure is only logged.
func (uc *bookingUsecase) notify(ctx context.Context, booking *models.Booking) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	message := &requests.BookingConfirmedMessage{
		BookingID:   booking.ID.Hex(),
		Patient:     booking.Patient,
		PatientName: booking.PatientName,
		Treatment:   booking.Treatment,
		Date:        booking.Date,
		Slot:        booking.Slot,
	}
	timeout := time.Duration(uc.Config.NotificationTimeoutInSecs) * time.Second
	taskCtx := context.WithoutCancel(ctx)

	uc.Dispatcher.Submit(func() {
		notifyCtx, cancel := context.WithTimeout(taskCtx, timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				uc.Log.Error("bookingUsecase.notify recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Any("panic", r),
				)
			}
		}()

		err := uc.BookingNotifier.EnqueueBookingConfirmation(notifyCtx, message)
		if err != nil {
			uc.Log.Error("bookingUsecase.notify error calling BookingNotifier.EnqueueBookingConfirmation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, message.BookingID),
				zap.Error(err),
			)
		}
	})
}
