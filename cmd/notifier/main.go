package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/mailer"
	"doctors-portal-service/internal/app/drivers/messaging"
	"doctors-portal-service/internal/app/services/shared/notification"
	"doctors-portal-service/internal/app/services/shared/smtp"
	"doctors-portal-service/internal/pkg/constvars"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ProcessNotifier)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connection := messaging.NewRabbitMQ(driverConfig, constvars.ProcessNotifier, log)
	defer connection.Close()

	channel, err := connection.Channel()
	if err != nil {
		log.Fatal("Failed to open rabbitMQ channel", zap.Error(err))
	}
	defer channel.Close()

	smtpService := smtp.NewSmtpService(mailer.NewSMTPClient(driverConfig, log), log)
	consumer := notification.NewBookingConfirmationConsumer(
		smtpService,
		internalConfig.Mailer.EmailSender,
		internalConfig.App.ClinicAddress,
		log,
	)

	err = consumer.Run(ctx, channel, internalConfig.RabbitMQ.MailerQueue, internalConfig.RabbitMQ.ConsumerPrefetch)
	if err != nil {
		log.Error("Notifier stopped", zap.Error(err))
		return
	}
	log.Info("Notifier exiting")
}
