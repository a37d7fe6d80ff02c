package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/messaging"
	"doctors-portal-service/internal/app/drivers/storage"
	"doctors-portal-service/internal/app/services/core/auth"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/doctors"
	"doctors-portal-service/internal/app/services/core/treatments"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/app/services/shared/locker"
	"doctors-portal-service/internal/app/services/shared/mailer"
	"doctors-portal-service/internal/app/services/shared/redis"
	minioStorage "doctors-portal-service/internal/app/services/shared/storage"
	"doctors-portal-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ProcessHTTP)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	ctx := context.Background()
	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(ctx, driverConfig, log),
		Redis:          database.NewRedisClient(ctx, driverConfig, log),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig, constvars.ProcessHTTP, log),
		Minio:          storage.NewMinio(driverConfig, internalConfig.Minio.BucketName, log),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	dispatcher, err := bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = dispatcher.Wait(shutdownCtx)
	if err != nil {
		log.Warn("Pending booking notifications were abandoned", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close connections", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap config.Bootstrap) (*bookings.NotificationDispatcher, error) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Indexes
	err := users.EnsureUserIndexes(ctx, bootstrap.MongoDB)
	if err != nil {
		return nil, err
	}
	err = doctors.EnsureDoctorIndexes(ctx, bootstrap.MongoDB)
	if err != nil {
		return nil, err
	}
	err = bookings.EnsureBookingIndexes(ctx, bootstrap.MongoDB)
	if err != nil {
		return nil, err
	}

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	tokenManager := jwtmanager.NewJWTManager(internalConfig, log)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.PublicBaseUrl, log)
	bookingNotifier, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, log)
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	treatmentRepository := treatments.NewTreatmentMongoRepository(bootstrap.MongoDB)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB)

	// Usecases
	dispatcher := bookings.NewNotificationDispatcher()
	authUsecase := auth.NewAuthUsecase(userRepository, tokenManager, log)
	userUsecase := users.NewUserUsecase(userRepository, tokenManager, log)
	treatmentUsecase := treatments.NewTreatmentUsecase(
		treatmentRepository,
		bookingRepository,
		redisRepository,
		time.Duration(internalConfig.Catalog.CacheTTLInSeconds)*time.Second,
		log,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, objectStorage, internalConfig.Minio, log)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		treatmentUsecase,
		lockService,
		bookingNotifier,
		dispatcher,
		internalConfig.Booking,
		log,
	)

	// Delivery
	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, authUsecase, internalConfig),
		controllers.NewCatalogController(log, treatmentUsecase, internalConfig),
		controllers.NewUserController(log, userUsecase, internalConfig),
		controllers.NewDoctorController(log, doctorUsecase, internalConfig),
		controllers.NewBookingController(log, bookingUsecase, internalConfig),
	)

	return dispatcher, nil
}
