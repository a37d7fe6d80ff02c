package treatments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type treatmentUsecase struct {
	TreatmentRepository contracts.TreatmentRepository
	BookingRepository   contracts.BookingRepository
	RedisRepository     contracts.RedisRepository
	CacheTTL            time.Duration
	Log                 *zap.Logger
}

func NewTreatmentUsecase(
	treatmentRepository contracts.TreatmentRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.TreatmentUsecase {
	return &treatmentUsecase{
		TreatmentRepository: treatmentRepository,
		BookingRepository:   bookingRepository,
		RedisRepository:     redisRepository,
		CacheTTL:            cacheTTL,
		Log:                 logger,
	}
}

func (uc *treatmentUsecase) ListServices(ctx context.Context) (*responses.ServiceList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("treatmentUsecase.ListServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(services)),
	)
	return &responses.ServiceList{Services: services}, nil
}

func (uc *treatmentUsecase) ListSpecializations(ctx context.Context) ([]responses.Specialization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.ListSpecializations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	specializations := make([]responses.Specialization, len(services))
	for i, service := range services {
		specializations[i] = responses.Specialization{ID: service.ID, Name: service.Name}
	}
	return specializations, nil
}

func (uc *treatmentUsecase) GetAvailability(ctx context.Context, date string) ([]responses.ServiceWithAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	services, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("treatmentUsecase.GetAvailability error calling BookingRepository.FindByDate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	availability := ComputeAvailability(services, bookings)

	uc.Log.Info("treatmentUsecase.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(availability)),
	)
	return availability, nil
}

func (uc *treatmentUsecase) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	services, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].Name == name {
			return &services[i], nil
		}
	}
	return nil, nil
}

// catalog reads the service list through the redis cache. A broken cache is
// logged and bypassed, the store stays the source of truth.
func (uc *treatmentUsecase) catalog(ctx context.Context) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCatalogServices)
	if err != nil {
		uc.Log.Warn("treatmentUsecase.catalog error reading cache, falling back to repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		var services []models.Service
		err = json.Unmarshal([]byte(cached), &services)
		if err == nil {
			uc.Log.Debug("treatmentUsecase.catalog served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool(constvars.LoggingCacheHitKey, true),
			)
			return services, nil
		}
		uc.Log.Warn("treatmentUsecase.catalog cached value is not valid JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	services, err := uc.TreatmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("treatmentUsecase.catalog error calling TreatmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.CacheTTL > 0 {
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyCatalogServices, services, uc.CacheTTL)
		if err != nil {
			uc.Log.Warn("treatmentUsecase.catalog error caching services",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return services, nil
}
