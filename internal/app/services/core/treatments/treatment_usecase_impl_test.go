package treatments

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTreatmentRepository struct {
	mock.Mock
}

func (m *MockTreatmentRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *MockTreatmentRepository) ReplaceAll(ctx context.Context, services []models.Service) (int, error) {
	args := m.Called(ctx, services)
	return args.Int(0), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	args := m.Called(ctx, patient)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) FindByTreatmentDatePatient(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, patient)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepository) FindByTreatmentDateSlot(ctx context.Context, treatment, date, slot string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, slot)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	stored, _ := args.Get(0).(*models.Booking)
	return stored, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func TestTreatmentUsecaseGetAvailability(t *testing.T) {
	ctx := context.Background()
	services := catalogFixture()

	t.Run("Cache Miss Reads Repository And Fills Cache", func(t *testing.T) {
		treatmentRepo := new(MockTreatmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", ctx, "catalog:services").Return("", nil)
		treatmentRepo.On("FindAll", ctx).Return(services, nil)
		redisRepo.On("Set", ctx, "catalog:services", services, time.Minute).Return(nil)
		bookingRepo.On("FindByDate", ctx, "2024-01-01").Return([]models.Booking{
			{Treatment: "Cleaning", Slot: "08:00", Date: "2024-01-01"},
		}, nil)

		usecase := NewTreatmentUsecase(treatmentRepo, bookingRepo, redisRepo, time.Minute, zap.NewNop())
		result, err := usecase.GetAvailability(ctx, "2024-01-01")

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, result[0].AvailableSlots)
		treatmentRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips Repository", func(t *testing.T) {
		treatmentRepo := new(MockTreatmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		cached, err := json.Marshal(services)
		require.NoError(t, err)
		redisRepo.On("Get", ctx, "catalog:services").Return(string(cached), nil)
		bookingRepo.On("FindByDate", ctx, "2024-01-02").Return([]models.Booking{}, nil)

		usecase := NewTreatmentUsecase(treatmentRepo, bookingRepo, redisRepo, time.Minute, zap.NewNop())
		result, err := usecase.GetAvailability(ctx, "2024-01-02")

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, services[1].Slots, result[1].AvailableSlots)
		treatmentRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("Broken Cache Falls Back To Repository", func(t *testing.T) {
		treatmentRepo := new(MockTreatmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", ctx, "catalog:services").Return("", errors.New("redis down"))
		redisRepo.On("Set", ctx, "catalog:services", services, time.Minute).Return(errors.New("redis down"))
		treatmentRepo.On("FindAll", ctx).Return(services, nil)
		bookingRepo.On("FindByDate", ctx, "2024-01-01").Return(nil, nil)

		usecase := NewTreatmentUsecase(treatmentRepo, bookingRepo, redisRepo, time.Minute, zap.NewNop())
		result, err := usecase.GetAvailability(ctx, "2024-01-01")

		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("Booking Store Failure Is Returned", func(t *testing.T) {
		treatmentRepo := new(MockTreatmentRepository)
		bookingRepo := new(MockBookingRepository)
		redisRepo := new(MockRedisRepository)

		redisRepo.On("Get", ctx, "catalog:services").Return("", nil)
		treatmentRepo.On("FindAll", ctx).Return(services, nil)
		bookingRepo.On("FindByDate", ctx, "2024-01-01").Return(nil, errors.New("mongo down"))

		usecase := NewTreatmentUsecase(treatmentRepo, bookingRepo, redisRepo, 0, zap.NewNop())
		_, err := usecase.GetAvailability(ctx, "2024-01-01")

		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTreatmentUsecaseCatalogViews(t *testing.T) {
	ctx := context.Background()
	services := catalogFixture()

	treatmentRepo := new(MockTreatmentRepository)
	redisRepo := new(MockRedisRepository)
	redisRepo.On("Get", ctx, "catalog:services").Return("", nil)
	treatmentRepo.On("FindAll", ctx).Return(services, nil)

	usecase := NewTreatmentUsecase(treatmentRepo, new(MockBookingRepository), redisRepo, 0, zap.NewNop())

	t.Run("List Services", func(t *testing.T) {
		list, err := usecase.ListServices(ctx)
		require.NoError(t, err)
		assert.Equal(t, services, list.Services)
	})

	t.Run("List Specializations Projects Names", func(t *testing.T) {
		specializations, err := usecase.ListSpecializations(ctx)
		require.NoError(t, err)
		require.Len(t, specializations, 3)
		assert.Equal(t, "Whitening", specializations[1].Name)
	})

	t.Run("Find Service By Name", func(t *testing.T) {
		service, err := usecase.FindServiceByName(ctx, "Whitening")
		require.NoError(t, err)
		require.NotNil(t, service)
		assert.True(t, service.OffersSlot("12:00"))

		missing, err := usecase.FindServiceByName(ctx, "Surgery")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
