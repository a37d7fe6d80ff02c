package mailer

import (
	"doctors-portal-service/internal/app/config"
	"net/smtp"

	"go.uber.org/zap"
)

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Auth     smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig, log *zap.Logger) *SMTPClient {
	var auth smtp.Auth
	if driverConfig.SMTP.Username != "" {
		auth = smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	}
	log.Info("SMTP client configured",
		zap.String("host", driverConfig.SMTP.Host),
		zap.Int("port", driverConfig.SMTP.Port),
	)
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: driverConfig.SMTP.Username,
		Auth:     auth,
	}
}
